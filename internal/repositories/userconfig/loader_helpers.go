package userconfig

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/errors"
)

// parseConfig applies every recognised key=value line of r to cfg.
func parseConfig(r io.Reader, cfg *license.Config) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			applyConfigLine(line, cfg)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// applyConfigLine handles one raw line. Lines without '=' and unknown keys
// are ignored.
func applyConfigLine(line string, cfg *license.Config) {
	key, value, ok := strings.Cut(strings.TrimRight(line, "\r\n"), "=")
	if !ok {
		return
	}
	switch key {
	case "author":
		cfg.Author = truncate(value, license.MaxAuthorLen)
	case "year":
		cfg.Year = truncate(value, license.MaxYearLen)
	case "default_license":
		cfg.DefaultLicense = truncate(value, license.MaxLicenseLen)
	}
}

// truncate cuts s to at most limit characters.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}

// ensureDirectoryExists creates path and its parents. An existing directory
// is fine; an existing file in its place is an error.
func ensureDirectoryExists(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return errors.Newf("%s exists and is not a directory", path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to inspect %s", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", path)
	}
	return nil
}
