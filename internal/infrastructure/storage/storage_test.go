package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func sampleSession() *domain.ReplaySession {
	s := &domain.ReplaySession{Seed: -42, Timestamp: 1700000000}
	s.Record(0, domain.SimpleIntent(domain.ActionInit))
	s.Record(0, domain.MoveIntent(1, -1))
	s.Record(1, domain.SimpleIntent(domain.ActionPickUp))
	s.Record(2, domain.UseIntent(3))
	s.Record(3, domain.DropIntent(0))
	s.Record(4, domain.SimpleIntent(domain.ActionQuit))
	return s
}

func TestBinaryRoundTrip(t *testing.T) {
	src := sampleSession()

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, src))

	// 28 байт заголовка + по 8 на действие
	assert.Equal(t, 28+8*len(src.Actions), buf.Len())

	got, err := ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Seed, got.Seed)
	assert.Equal(t, src.Timestamp, got.Timestamp)
	assert.Equal(t, src.Actions, got.Actions)
}

func TestReadBinary_Rejects(t *testing.T) {
	t.Run("bad magic", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBinary(&buf, sampleSession()))
		raw := buf.Bytes()
		raw[0] = 'X'

		_, err := ReadBinary(bytes.NewReader(raw))
		assert.ErrorContains(t, err, "invalid magic")
	})

	t.Run("truncated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBinary(&buf, sampleSession()))
		raw := buf.Bytes()[:buf.Len()-3]

		_, err := ReadBinary(bytes.NewReader(raw))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ReadBinary(bytes.NewReader(nil))
		assert.Error(t, err)
	})
}

func TestWriteBinary_OutOfRange(t *testing.T) {
	s := &domain.ReplaySession{Seed: 1}
	s.Record(0, domain.MoveIntent(300, 0))
	assert.Error(t, WriteBinary(&bytes.Buffer{}, s))

	s = &domain.ReplaySession{Seed: 1}
	s.Record(0, domain.UseIntent(-1))
	assert.Error(t, WriteBinary(&bytes.Buffer{}, s))
}

func TestReplayService_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replays")
	svc := NewReplayService(dir)

	src := sampleSession()
	path, err := svc.Save(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "replay_-42_1700000000.cdrp"), path)

	got, err := svc.Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Actions, got.Actions)
}

func TestReplayService_SaveRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewReplayService(dir)

	s := &domain.ReplaySession{Seed: 7, Timestamp: 1700000000}
	s.Record(0, domain.SimpleIntent(domain.ActionInit))
	s.Record(0, domain.UseIntent(300))

	path, err := svc.Save(s)
	require.Error(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no half-written journal must stay behind")
}

func TestNewReplayService_BadDir(t *testing.T) {
	// Каталог нельзя создать: на его месте уже лежит файл
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	svc := NewReplayService(filepath.Join(blocker, "replays"))
	_, err := svc.Save(&domain.ReplaySession{Seed: 1})
	assert.Error(t, err)
}
