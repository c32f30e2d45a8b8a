package ports

/*
TemplateStore gives read access to the on-disk license database: license
bodies under licenses/ and descriptions under descriptions/.
*/
type TemplateStore interface {
	// LoadTemplate returns the exact bytes of licenses/<name>.txt.
	LoadTemplate(name string) ([]byte, error)

	// ListTemplates returns the names of all templates, sorted.
	ListTemplates() ([]string, error)

	// FirstLine returns the first line of a template without its terminator.
	FirstLine(name string) (string, error)

	// LoadDescription returns the exact bytes of descriptions/<name>.desc.
	LoadDescription(name string) ([]byte, error)

	// LicensesDir is the directory templates are read from.
	LicensesDir() string
}
