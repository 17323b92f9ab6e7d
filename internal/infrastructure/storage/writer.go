package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rogue-engine/internal/domain"
	"rogue-engine/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `CDRP` // 4 байта
	Version2    uint32 = 2
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	ActionCount int32   // 4 байта
}

// ActionRecord - запись одного намерения фиксированной длины.
type ActionRecord struct {
	Turn   int32 // 4
	Action uint8 // 1
	Dx     int8  // 1
	Dy     int8  // 1
	Slot   uint8 // 1
}

type ReplayService struct {
	SaveDir string
}

// NewReplayService готовит каталог для журналов. Если создать его не
// удалось, ошибка всплывёт при первом Save.
func NewReplayService(dir string) *ReplayService {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "replay_storage",
			"dir":       dir,
		}).WithError(err).Warn("Cannot create replay directory")
	}
	return &ReplayService{SaveDir: dir}
}

// Save пишет журнал в SaveDir и возвращает путь к файлу.
// При любой ошибке недописанный файл удаляется.
func (s *ReplayService) Save(session *domain.ReplaySession) (path string, err error) {
	filename := fmt.Sprintf("replay_%d_%d.cdrp", session.Seed, session.Timestamp)
	path = filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close replay file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
			path = ""
		}
	}()

	bw := bufio.NewWriter(f)
	if err = WriteBinary(bw, session); err != nil {
		return "", err
	}
	if err = bw.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

func WriteBinary(w io.Writer, s *domain.ReplaySession) error {
	header := ReplayFileHeader{
		Version:     Version2,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, act := range s.Actions {
		in := act.Intent
		if !fitsInt8(in.Dx) || !fitsInt8(in.Dy) {
			return fmt.Errorf("action %d: direction out of range (%d,%d)", i, in.Dx, in.Dy)
		}
		if in.Slot < 0 || in.Slot > 255 {
			return fmt.Errorf("action %d: slot out of range: %d", i, in.Slot)
		}

		rec := ActionRecord{
			Turn:   int32(act.Turn),
			Action: uint8(in.Action),
			Dx:     int8(in.Dx),
			Dy:     int8(in.Dy),
			Slot:   uint8(in.Slot),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}

	return nil
}

func fitsInt8(v int) bool {
	return v >= -128 && v <= 127
}
