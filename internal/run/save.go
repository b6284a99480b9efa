package run

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-wave-survivor/internal/config"
)

// ErrNoSave is returned when the store holds no save.
var ErrNoSave = errors.New("no save")

// SaveFile is the persisted envelope around the active run.
type SaveFile struct {
	Version   int       `json:"version"`
	ActiveRun *RunState `json:"activeRun"`
}

// Encode serializes rs inside a versioned envelope.
func Encode(rs *RunState) ([]byte, error) {
	data, err := json.Marshal(SaveFile{Version: config.SaveVersion, ActiveRun: rs})
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return data, nil
}

// Decode parses a save. A save without an active run yields ErrNoSave;
// anything that fails to parse or validate yields ErrMalformed.
func Decode(data []byte) (*RunState, error) {
	var sf SaveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if sf.Version != config.SaveVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformed, sf.Version)
	}
	if sf.ActiveRun == nil {
		return nil, ErrNoSave
	}
	if err := sf.ActiveRun.Validate(); err != nil {
		return nil, err
	}
	sf.ActiveRun.normalize()
	return sf.ActiveRun, nil
}

// Load reads and decodes the active run from store.
func Load(store Store) (*RunState, error) {
	data, err := store.Read()
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Save writes rs to store, replacing any previous save.
func Save(store Store, rs *RunState) error {
	data, err := Encode(rs)
	if err != nil {
		return err
	}
	if err := store.Write(data); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}
