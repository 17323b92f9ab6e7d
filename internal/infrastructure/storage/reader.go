package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"rogue-engine/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBinary(bufio.NewReader(f))
}

func ReadBinary(r io.Reader) (*domain.ReplaySession, error) {
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version2 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version2)
	}
	if header.ActionCount < 0 {
		return nil, fmt.Errorf("negative action count: %d", header.ActionCount)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Actions:   make([]domain.ReplayAction, 0, header.ActionCount),
	}

	for i := 0; i < int(header.ActionCount); i++ {
		var rec ActionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read action %d: %w", i, err)
		}

		session.Actions = append(session.Actions, domain.ReplayAction{
			Turn: int(rec.Turn),
			Intent: domain.Intent{
				Action: domain.ActionType(rec.Action),
				Dx:     int(rec.Dx),
				Dy:     int(rec.Dy),
				Slot:   int(rec.Slot),
			},
		})
	}

	return session, nil
}
