package testutil

import (
	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
)

// MockConfigLoader is a mock implementation of ports.ConfigLoader.
type MockConfigLoader struct {
	LoadFunc  func() (license.Config, error)
	LoadCalls int
}

// Load returns the default configuration unless LoadFunc is set.
func (m *MockConfigLoader) Load() (license.Config, error) {
	m.LoadCalls++
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return license.DefaultConfig(), nil
}

func (m *MockConfigLoader) Path() string {
	return "/mock/.config/OSLA/osla.conf"
}

var _ ports.ConfigLoader = (*MockConfigLoader)(nil)
