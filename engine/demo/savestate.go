package demo

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/storage"
)

// MaxSaveSlot is the highest save slot
const MaxSaveSlot = 9

// saveFile is the JSON stored per slot
type saveFile struct {
	Description string        `json:"description"`
	SaveTime    time.Time     `json:"saveTime"`
	PlayTime    time.Duration `json:"playTime"`
	State       ballState     `json:"state"`
}

func slotPath(target string, slot int) (string, error) {
	saveDir, err := storage.GetGameSaveDir(target)
	if err != nil {
		return "", err
	}
	return filepath.Join(saveDir, fmt.Sprintf("slot-%d.json", slot)), nil
}

func writeSlot(target string, slot int, f *saveFile) error {
	path, err := slotPath(target, slot)
	if err != nil {
		return err
	}
	return storage.AtomicWriteJSON(path, f)
}

func readSlot(target string, slot int) (*saveFile, error) {
	path, err := slotPath(target, slot)
	if err != nil {
		return nil, err
	}
	f := &saveFile{}
	if err := storage.ReadJSON(path, f); err != nil {
		return nil, err
	}
	return f, nil
}

func listSaves(target string) []gui.SaveStateDescriptor {
	var saves []gui.SaveStateDescriptor
	for slot := 0; slot <= MaxSaveSlot; slot++ {
		f, err := readSlot(target, slot)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				log.Printf("Warning: skipping save slot %d: %v", slot, err)
			}
			continue
		}
		saves = append(saves, gui.SaveStateDescriptor{
			Slot:        slot,
			Description: f.Description,
			SaveTime:    f.SaveTime,
			PlayTime:    f.PlayTime,
		})
	}
	return saves
}
