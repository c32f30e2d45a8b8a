package testutil

import (
	"errors"

	"github.com/AntonioJCosta/osla/internal/core/ports"
)

// MockTemplateStore is a mock implementation of ports.TemplateStore for testing.
type MockTemplateStore struct {
	LoadTemplateFunc    func(name string) ([]byte, error)
	ListTemplatesFunc   func() ([]string, error)
	FirstLineFunc       func(name string) (string, error)
	LoadDescriptionFunc func(name string) ([]byte, error)
	Dir                 string

	// LoadTemplateCalls records the names passed to LoadTemplate.
	LoadTemplateCalls []string
}

func (m *MockTemplateStore) LoadTemplate(name string) ([]byte, error) {
	m.LoadTemplateCalls = append(m.LoadTemplateCalls, name)
	if m.LoadTemplateFunc != nil {
		return m.LoadTemplateFunc(name)
	}
	return nil, errors.New("MockTemplateStore: LoadTemplateFunc not implemented")
}

func (m *MockTemplateStore) ListTemplates() ([]string, error) {
	if m.ListTemplatesFunc != nil {
		return m.ListTemplatesFunc()
	}
	return nil, errors.New("MockTemplateStore: ListTemplatesFunc not implemented")
}

func (m *MockTemplateStore) FirstLine(name string) (string, error) {
	if m.FirstLineFunc != nil {
		return m.FirstLineFunc(name)
	}
	return "", errors.New("MockTemplateStore: FirstLineFunc not implemented")
}

func (m *MockTemplateStore) LoadDescription(name string) ([]byte, error) {
	if m.LoadDescriptionFunc != nil {
		return m.LoadDescriptionFunc(name)
	}
	return nil, errors.New("MockTemplateStore: LoadDescriptionFunc not implemented")
}

func (m *MockTemplateStore) LicensesDir() string {
	if m.Dir != "" {
		return m.Dir
	}
	return "/mock/licenses"
}

var _ ports.TemplateStore = (*MockTemplateStore)(nil)
