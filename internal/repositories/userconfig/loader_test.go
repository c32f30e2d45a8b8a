package userconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "OSLA", "osla.conf"), path)
}

func TestFileConfigLoader_EmptyPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	loader := NewFileConfigLoader("", nil)

	_, err := loader.Load()
	require.NoError(t, err)

	want := filepath.Join(home, ".config", "OSLA", "osla.conf")
	assert.Equal(t, want, loader.Path())
	assert.FileExists(t, want)
}

func TestFileConfigLoader_Bootstrap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	path := filepath.Join(t.TempDir(), ".config", "OSLA", "osla.conf")
	loader := NewFileConfigLoader(path, zap.New(core))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, license.Config{Author: "Your Name", Year: "2025", DefaultLicense: "mit"}, cfg)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "author=Your Name\nyear=2025\ndefault_license=mit\n", string(content))
	assert.Len(t, strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"), 3)
	assert.Equal(t, 1, logs.FilterMessage("default configuration file created").Len())

	// The bootstrapped file is read back on the next run.
	again, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
	assert.Equal(t, 1, logs.FilterMessage("configuration loaded successfully").Len())
}

func TestFileConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    license.Config
	}{
		{
			name:    "partial file keeps defaults for unset keys",
			content: "author=Alice\nthis line has no separator\nyear=2030\n",
			want:    license.Config{Author: "Alice", Year: "2030", DefaultLicense: "mit"},
		},
		{
			name:    "all keys",
			content: "author=Bob Builder\nyear=1999\ndefault_license=apache\n",
			want:    license.Config{Author: "Bob Builder", Year: "1999", DefaultLicense: "apache"},
		},
		{
			name:    "crlf line endings",
			content: "author=Carol\r\nyear=2001\r\n",
			want:    license.Config{Author: "Carol", Year: "2001", DefaultLicense: "mit"},
		},
		{
			name:    "no trailing newline",
			content: "default_license=gpl",
			want:    license.Config{Author: "Your Name", Year: "2025", DefaultLicense: "gpl"},
		},
		{
			name:    "split happens at the first equals sign",
			content: "author=A=B\n",
			want:    license.Config{Author: "A=B", Year: "2025", DefaultLicense: "mit"},
		},
		{
			name:    "empty value overrides",
			content: "author=\n",
			want:    license.Config{Author: "", Year: "2025", DefaultLicense: "mit"},
		},
		{
			name:    "unknown and differently cased keys are ignored",
			content: "Author=Eve\nlicense=bsd\n email=x@y\n",
			want:    license.DefaultConfig(),
		},
		{
			name:    "later lines win",
			content: "year=2000\nyear=2001\n",
			want:    license.Config{Author: "Your Name", Year: "2001", DefaultLicense: "mit"},
		},
		{
			name:    "empty file",
			content: "",
			want:    license.DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "osla.conf")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := NewFileConfigLoader(path, nil).Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)

			// Loading never rewrites an existing file.
			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(after))
		})
	}
}

func TestFileConfigLoader_Truncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osla.conf")
	content := "author=" + strings.Repeat("a", 500) + "\n" +
		"year=" + strings.Repeat("9", 40) + "\n" +
		"default_license=" + strings.Repeat("l", 100) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewFileConfigLoader(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", license.MaxAuthorLen), cfg.Author)
	assert.Equal(t, strings.Repeat("9", license.MaxYearLen), cfg.Year)
	assert.Equal(t, strings.Repeat("l", license.MaxLicenseLen), cfg.DefaultLicense)
}

func TestFileConfigLoader_Errors(t *testing.T) {
	t.Run("parent path is a file", func(t *testing.T) {
		base := t.TempDir()
		blocker := filepath.Join(base, "OSLA")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

		_, err := NewFileConfigLoader(filepath.Join(blocker, "osla.conf"), nil).Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, license.ErrConfig))
	})

	t.Run("config path is a directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "osla.conf")
		require.NoError(t, os.MkdirAll(path, 0755))

		_, err := NewFileConfigLoader(path, nil).Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, license.ErrConfig))
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{in: "", limit: 3, want: ""},
		{in: "abc", limit: 3, want: "abc"},
		{in: "abcd", limit: 3, want: "abc"},
		{in: "Zoë Ünïcode", limit: 3, want: "Zoë"},
		{in: "日本語テキスト", limit: 2, want: "日本"},
		{in: "abc", limit: 0, want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.limit), tt.in)
	}
}

func TestEnsureDirectoryExists(t *testing.T) {
	base := t.TempDir()

	nested := filepath.Join(base, "a", "b", "c")
	require.NoError(t, ensureDirectoryExists(nested))
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, ensureDirectoryExists(nested))

	file := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err = ensureDirectoryExists(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}
