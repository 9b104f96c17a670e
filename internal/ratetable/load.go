package ratetable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML rate table from path. Keys missing from the file keep
// their Default values.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read rate table: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Table, error) {
	table := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("decode rate table: %w", err)
	}

	if err := table.Validate(); err != nil {
		return Table{}, err
	}
	return table, nil
}
