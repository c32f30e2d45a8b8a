package testutil

// MockSubstituter is a mock implementation of ports.Substituter.
type MockSubstituter struct {
	SubstituteFunc func(text, year, author string) string
}

// Substitute returns text unchanged unless SubstituteFunc is set.
func (m *MockSubstituter) Substitute(text, year, author string) string {
	if m.SubstituteFunc != nil {
		return m.SubstituteFunc(text, year, author)
	}
	return text
}
