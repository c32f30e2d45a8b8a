package placeholder

import (
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/ports"
)

type replacementKind int

const (
	withYear replacementKind = iota
	withAuthor
	// withCopyrightYear keeps the "(c) " text in front of the year.
	withCopyrightYear
)

// Token is a literal placeholder pattern and what replaces it.
type Token struct {
	Pattern string
	kind    replacementKind
}

// tokens are tried in this order at every scan position; the first match wins.
var tokens = []Token{
	{Pattern: "<YEAR>", kind: withYear},
	{Pattern: "[yyyy]", kind: withYear},
	{Pattern: "[year]", kind: withYear},
	{Pattern: "(c) [year]", kind: withCopyrightYear},
	{Pattern: "<AUTHOR>", kind: withAuthor},
	{Pattern: "[name of copyright owner]", kind: withAuthor},
	{Pattern: "[fullname]", kind: withAuthor},
	{Pattern: "<COPYRIGHT HOLDER>", kind: withAuthor},
	{Pattern: "[copyright holder]", kind: withAuthor},
}

// startBytes holds the first byte of every pattern, for skipping plain text.
var startBytes = func() string {
	var sb strings.Builder
	for _, t := range tokens {
		if !strings.ContainsRune(sb.String(), rune(t.Pattern[0])) {
			sb.WriteByte(t.Pattern[0])
		}
	}
	return sb.String()
}()

// Engine implements ports.Substituter.
type Engine struct{}

// NewEngine creates a new placeholder Engine.
func NewEngine() ports.Substituter {
	return &Engine{}
}

// Tokens returns the placeholder patterns in priority order.
func Tokens() []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Pattern
	}
	return out
}

/*
Substitute scans text once from left to right. At each position the tokens
are tested in priority order and the first one found there is replaced;
the scan then continues after the matched pattern, so emitted values are
never scanned again. Any other byte is copied unchanged.
*/
func (e *Engine) Substitute(text, year, author string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		next := strings.IndexAny(text[i:], startBytes)
		if next < 0 {
			b.WriteString(text[i:])
			break
		}
		b.WriteString(text[i : i+next])
		i += next

		tok, ok := matchAt(text[i:])
		if !ok {
			b.WriteByte(text[i])
			i++
			continue
		}
		b.WriteString(tok.replacement(year, author))
		i += len(tok.Pattern)
	}
	return b.String()
}

func matchAt(s string) (Token, bool) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.Pattern) {
			return t, true
		}
	}
	return Token{}, false
}

func (t Token) replacement(year, author string) string {
	switch t.kind {
	case withAuthor:
		return author
	case withCopyrightYear:
		return "(c) " + year
	default:
		return year
	}
}
