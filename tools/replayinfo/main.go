package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rogue-engine/internal/domain"
	"rogue-engine/internal/infrastructure/storage"
)

func main() {
	if len(os.Args) < 3 {
		printHelp()
		return
	}

	journal, err := load(os.Args[2])
	if err != nil {
		fmt.Printf("Invalid journal: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "info":
		printInfo(journal)
	case "dump":
		printInfo(journal)
		for i, a := range journal.Actions {
			fmt.Printf("%5d  turn %-5d %s\n", i, a.Turn, describe(a.Intent))
		}
	default:
		printHelp()
	}
}

func load(path string) (*domain.ReplaySession, error) {
	svc := &storage.ReplayService{SaveDir: filepath.Dir(path)}
	return svc.Load(path)
}

func printInfo(j *domain.ReplaySession) {
	fmt.Printf("Seed:     %d\n", j.Seed)
	fmt.Printf("Recorded: %s\n", time.Unix(j.Timestamp, 0).Format(time.RFC3339))
	fmt.Printf("Actions:  %d\n", len(j.Actions))
}

func describe(in domain.Intent) string {
	switch in.Action {
	case domain.ActionMove:
		return fmt.Sprintf("%s dx=%d dy=%d", in.Action, in.Dx, in.Dy)
	case domain.ActionUse, domain.ActionDrop:
		return fmt.Sprintf("%s slot=%c", in.Action, domain.SlotLetter(in.Slot))
	default:
		return in.Action.String()
	}
}

func printHelp() {
	fmt.Println(`Replay Info - просмотр журналов .cdrp
Commands:
  info <file>   - сид, время записи и число намерений
  dump <file>   - то же плюс все намерения по порядку`)
}
