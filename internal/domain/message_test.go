package domain

import "testing"

func TestMessageLog_EvictsOldest(t *testing.T) {
	log := NewMessageLog(3)
	for _, text := range []string{"one", "two", "three", "four"} {
		log.Add(text, 0xFFFFFF, MsgInfo)
	}

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Text != "two" || entries[2].Text != "four" {
		t.Errorf("unexpected order: %+v", entries)
	}
	if log.Seq() != 4 {
		t.Errorf("Seq() = %d, want 4", log.Seq())
	}
}

func TestMessageLog_Since(t *testing.T) {
	log := NewMessageLog(2)
	log.Add("old", 0, MsgInfo)
	mark := log.Seq()

	if got := log.Since(mark); got != nil {
		t.Errorf("expected nothing new, got %+v", got)
	}

	log.Add("a", 0, MsgCombat)
	log.Add("b", 0, MsgCombat)
	log.Add("c", 0, MsgCombat)

	got := log.Since(mark)
	if len(got) != 2 || got[0].Text != "b" || got[1].Text != "c" {
		t.Errorf("Since() = %+v, want only retained b,c", got)
	}
}
