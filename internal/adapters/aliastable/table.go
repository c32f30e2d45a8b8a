package aliastable

import (
	"bytes"
	_ "embed"
	"io"
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var embeddedAliases []byte

// Table implements ports.AliasResolver over a fixed, ordered alias list.
type Table struct {
	entries []license.AliasEntry
}

// NewTable builds the table shipped with the binary.
func NewTable() (ports.AliasResolver, error) {
	return NewTableFromYAML(embeddedAliases)
}

// NewTableFromYAML decodes a YAML list of {alias, license} entries.
// Unknown fields, empty values and duplicate aliases are rejected.
func NewTableFromYAML(data []byte) (*Table, error) {
	entries := []license.AliasEntry{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal alias table")
	}

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Alias) == "" || strings.TrimSpace(e.License) == "" {
			return nil, errors.Newf("alias table entry %d: alias and license must both be set", i+1)
		}
		key := strings.ToLower(e.Alias)
		if _, dup := seen[key]; dup {
			return nil, errors.Newf("alias table entry %d: duplicate alias %q", i+1, e.Alias)
		}
		seen[key] = struct{}{}
	}

	return &Table{entries: entries}, nil
}

// Resolve implements ports.AliasResolver.
func (t *Table) Resolve(input string) (string, bool) {
	for _, e := range t.entries {
		if strings.EqualFold(input, e.Alias) {
			return e.License, true
		}
	}
	return "", false
}

// Entries implements ports.AliasResolver. The returned slice is a copy.
func (t *Table) Entries() []license.AliasEntry {
	out := make([]license.AliasEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
