package widgets

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/memory"
)

// sessionRecord is the on-disk subset of scrollState. Velocity is
// deliberately absent: momentum must never be restored from a prior
// session. The drag anchor is likewise transient.
type sessionRecord struct {
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	ShowScroll bool    `yaml:"show_scroll"`
}

// SaveSession writes every scroll area's persisted state to w as
// YAML, keyed by identity. Pair with LoadSession to keep scroll
// positions across process restarts.
func SaveSession(store *memory.Store, w io.Writer) error {
	records := make(map[uint64]sessionRecord)
	store.Range(func(id memory.ID, value any) bool {
		if state, ok := value.(scrollState); ok {
			records[uint64(id)] = sessionRecord{
				OffsetX:    state.Offset.X,
				OffsetY:    state.Offset.Y,
				ShowScroll: state.ShowScroll,
			}
		}
		return true
	})

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode scroll session: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write scroll session: %w", err)
	}
	return nil
}

// LoadSession restores scroll states saved by SaveSession into the
// store. Restored states always start with zero velocity and no drag
// anchor.
func LoadSession(store *memory.Store, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read scroll session: %w", err)
	}

	var records map[uint64]sessionRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to decode scroll session: %w", err)
	}

	for key, record := range records {
		store.Insert(memory.ID(key), scrollState{
			Offset:     geometry.Offset{X: record.OffsetX, Y: record.OffsetY},
			ShowScroll: record.ShowScroll,
		})
	}
	return nil
}
