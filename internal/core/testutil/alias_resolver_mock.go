package testutil

import (
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
)

// MockAliasResolver is a mock implementation of ports.AliasResolver.
// With no funcs set it resolves case-insensitively over Table.
type MockAliasResolver struct {
	Table       []license.AliasEntry
	ResolveFunc func(input string) (string, bool)
}

// Resolve implements ports.AliasResolver.
func (m *MockAliasResolver) Resolve(input string) (string, bool) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(input)
	}
	for _, e := range m.Table {
		if strings.EqualFold(e.Alias, input) {
			return e.License, true
		}
	}
	return "", false
}

// Entries implements ports.AliasResolver.
func (m *MockAliasResolver) Entries() []license.AliasEntry {
	return m.Table
}

var _ ports.AliasResolver = (*MockAliasResolver)(nil)
