package ports

// Substituter fills the year and author placeholders of a template.
type Substituter interface {
	Substitute(text, year, author string) string
}
