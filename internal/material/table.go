// Package material resolves numeric block ids to display names.
package material

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// defaults covers the blocks that can be protected out of the box.
var defaults = map[int32]string{
	23:  "dispenser",
	54:  "chest",
	61:  "furnace",
	62:  "burning furnace",
	64:  "wooden door",
	71:  "iron door",
	96:  "trap door",
	107: "fence gate",
}

// Table maps block ids to names. Read-only after construction, safe for
// concurrent use.
type Table struct {
	names map[int32]string
}

// entry is one item of a materials YAML file.
type entry struct {
	ID   int32  `yaml:"id"`
	Name string `yaml:"name"`
}

// NewTable returns a table with the built-in names.
func NewTable() *Table {
	names := make(map[int32]string, len(defaults))
	for id, name := range defaults {
		names[id] = name
	}
	return &Table{names: names}
}

// Load returns the built-in table overlaid with entries from a YAML file:
//
//	- id: 146
//	  name: trapped chest
//
// A missing file is not an error; the built-in table is returned.
func Load(path string) (*Table, error) {
	t := NewTable()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("materials file does not exist, using built-in names", "path", path)
			return t, nil
		}
		return nil, fmt.Errorf("reading materials %s: %w", path, err)
	}

	if err := t.merge(data); err != nil {
		return nil, fmt.Errorf("parsing materials %s: %w", path, err)
	}
	slog.Debug("materials loaded", "path", path, "count", t.Len())
	return t, nil
}

func (t *Table) merge(data []byte) error {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return err
	}
	for i, e := range entries {
		if e.ID <= 0 {
			return fmt.Errorf("entry %d: id must be positive, got %d", i, e.ID)
		}
		if e.Name == "" {
			return fmt.Errorf("entry %d (id %d): empty name", i, e.ID)
		}
		t.names[e.ID] = e.Name
	}
	return nil
}

// MaterialName returns the name of id, or "#id" when unknown.
func (t *Table) MaterialName(id int32) string {
	if name, ok := t.names[id]; ok {
		return name
	}
	return "#" + strconv.Itoa(int(id))
}

// Len returns the number of named ids.
func (t *Table) Len() int {
	return len(t.names)
}
