package licensegen

import (
	"os"
	"strings"
	"testing"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/testutil"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAliases = []license.AliasEntry{
	{Alias: "gpl", License: "gpl-3.0"},
	{Alias: "apache", License: "apache-2.0"},
}

func TestNewService(t *testing.T) {
	aliases := &testutil.MockAliasResolver{}
	store := &testutil.MockTemplateStore{}
	sub := &testutil.MockSubstituter{}

	t.Run("should return a service if dependencies are set", func(t *testing.T) {
		assert.NotNil(t, NewService(aliases, store, sub, nil))
	})

	t.Run("should panic on nil dependencies", func(t *testing.T) {
		assert.Panics(t, func() { NewService(nil, store, sub, nil) })
		assert.Panics(t, func() { NewService(aliases, nil, sub, nil) })
		assert.Panics(t, func() { NewService(aliases, store, nil, nil) })
	})
}

func TestService_Generate(t *testing.T) {
	cfg := license.Config{Author: "Jane Doe", Year: "2025", DefaultLicense: "mit"}
	notFound := errors.Mark(errors.Wrap(os.ErrNotExist, "failed to open template"), license.ErrTemplateNotFound)

	tests := []struct {
		name          string
		input         string
		templates     map[string]string
		loadErr       error
		wantCanonical string
		wantContent   string
		wantErrKind   error
		wantErrMsg    string
	}{
		{
			name:          "alias is resolved before loading",
			input:         "gpl",
			templates:     map[string]string{"gpl-3.0": "GPL (c) <YEAR> <AUTHOR>"},
			wantCanonical: "gpl-3.0",
			wantContent:   "GPL (c) 2025 Jane Doe",
		},
		{
			name:          "alias match ignores case",
			input:         "APACHE",
			templates:     map[string]string{"apache-2.0": "Copyright [yyyy] [name of copyright owner]"},
			wantCanonical: "apache-2.0",
			wantContent:   "Copyright 2025 Jane Doe",
		},
		{
			name:          "unknown alias passes through",
			input:         "mit",
			templates:     map[string]string{"mit": "MIT <YEAR>"},
			wantCanonical: "mit",
			wantContent:   "MIT 2025",
		},
		{
			name:        "missing template",
			input:       "nosuch",
			templates:   map[string]string{},
			wantErrKind: license.ErrTemplateNotFound,
			wantErrMsg:  "license 'nosuch' not found",
		},
		{
			name:        "missing template behind an alias names both",
			input:       "gpl",
			templates:   map[string]string{},
			wantErrKind: license.ErrTemplateNotFound,
			wantErrMsg:  "license 'gpl' (gpl-3.0) not found",
		},
		{
			name:        "read failure is not reported as not found",
			input:       "mit",
			loadErr:     errors.Mark(errors.New("short read"), license.ErrTemplateRead),
			wantErrKind: license.ErrTemplateRead,
			wantErrMsg:  "failed to load license 'mit'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &testutil.MockTemplateStore{
				LoadTemplateFunc: func(name string) ([]byte, error) {
					if tt.loadErr != nil {
						return nil, tt.loadErr
					}
					text, ok := tt.templates[name]
					if !ok {
						return nil, notFound
					}
					return []byte(text), nil
				},
			}
			sub := &testutil.MockSubstituter{
				SubstituteFunc: func(text, year, author string) string {
					return fakeSubstitute(text, year, author)
				},
			}
			svc := NewService(&testutil.MockAliasResolver{Table: testAliases}, store, sub, nil)

			got, err := svc.Generate(tt.input, cfg)

			if tt.wantErrKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErrKind), "error %v is not %v", err, tt.wantErrKind)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.Requested)
			assert.Equal(t, tt.wantCanonical, got.Canonical)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.Equal(t, []string{tt.wantCanonical}, store.LoadTemplateCalls)
		})
	}
}

func TestService_GenerateNotFoundHint(t *testing.T) {
	store := &testutil.MockTemplateStore{
		LoadTemplateFunc: func(string) ([]byte, error) {
			return nil, errors.Mark(errors.New("open failed"), license.ErrTemplateNotFound)
		},
	}
	svc := NewService(&testutil.MockAliasResolver{}, store, &testutil.MockSubstituter{}, nil)

	_, err := svc.Generate("foo", license.DefaultConfig())
	require.Error(t, err)
	assert.Equal(t, "license 'foo' not found", err.Error())
	assert.Equal(t, []string{"Try 'osla --list' to see available licenses."}, errors.GetAllHints(err))
}

func TestService_Resolve(t *testing.T) {
	svc := NewService(&testutil.MockAliasResolver{Table: testAliases}, &testutil.MockTemplateStore{}, &testutil.MockSubstituter{}, nil).(*service)

	assert.Equal(t, "gpl-3.0", svc.resolve("Gpl"))
	assert.Equal(t, "gpl-3.0", svc.resolve("gpl-3.0"))
	assert.Equal(t, "whatever", svc.resolve("whatever"))
}

// fakeSubstitute handles the tokens the table above uses, enough to see
// that the configured values reach the substituter.
func fakeSubstitute(text, year, author string) string {
	return strings.NewReplacer(
		"<YEAR>", year,
		"[yyyy]", year,
		"<AUTHOR>", author,
		"[name of copyright owner]", author,
	).Replace(text)
}
