package testutil

// MockOutputWriter records what was written.
type MockOutputWriter struct {
	WriteFunc func(content string) error
	Written   []string
	Dest      string
}

func (m *MockOutputWriter) Write(content string) error {
	if m.WriteFunc != nil {
		if err := m.WriteFunc(content); err != nil {
			return err
		}
	}
	m.Written = append(m.Written, content)
	return nil
}

func (m *MockOutputWriter) Destination() string {
	if m.Dest != "" {
		return m.Dest
	}
	return "mock"
}
