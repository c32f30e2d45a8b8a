package ports

import "github.com/AntonioJCosta/osla/internal/core/domain/license"

/*
AliasResolver maps user-typed aliases to canonical license names.
This is a driven port, implemented by the static alias table.
*/
type AliasResolver interface {
	// Resolve returns the canonical name for input and true, or "" and false
	// when input is not a known alias. Matching is case-insensitive.
	Resolve(input string) (string, bool)

	// Entries returns the alias table in its fixed order.
	Entries() []license.AliasEntry
}
