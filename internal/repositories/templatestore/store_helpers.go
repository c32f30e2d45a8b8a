package templatestore

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/errors"
	"go.uber.org/zap"
)

// LoadTemplate implements ports.TemplateStore.
// Failing to open the file is reported as license.ErrTemplateNotFound; a
// file that cannot be read in full is license.ErrTemplateRead.
func (s *Store) LoadTemplate(name string) ([]byte, error) {
	if !validName(name) {
		return nil, errors.Mark(errors.Newf("invalid license name %q", name), license.ErrTemplateNotFound)
	}
	path := s.templatePath(name)
	s.logger.Debug("loading template", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to open template %s", name), license.ErrTemplateNotFound)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to stat template %s", path), license.ErrTemplateRead)
	}
	if info.IsDir() {
		return nil, errors.Mark(errors.Newf("template %s is a directory", path), license.ErrTemplateNotFound)
	}

	data, err := readFull(file, info.Size())
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to read template %s", path), license.ErrTemplateRead)
	}
	return data, nil
}

// readFull reads exactly size bytes from r.
func readFull(r io.Reader, size int64) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, errors.Wrapf(err, "expected %d bytes", size)
	}
	return data, nil
}

// ListTemplates implements ports.TemplateStore.
func (s *Store) ListTemplates() ([]string, error) {
	dir := s.LicensesDir()
	s.logger.Debug("listing templates", zap.String("dir", dir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "unable to open licenses directory %s", dir), license.ErrCatalogUnavailable)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), templateExt)
		if !ok || name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// FirstLine implements ports.TemplateStore.
func (s *Store) FirstLine(name string) (string, error) {
	if !validName(name) {
		return "", errors.Mark(errors.Newf("invalid license name %q", name), license.ErrTemplateNotFound)
	}
	file, err := os.Open(s.templatePath(name))
	if err != nil {
		return "", errors.Mark(errors.Wrapf(err, "failed to open template %s", name), license.ErrTemplateNotFound)
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Mark(errors.Wrapf(err, "failed to read template %s", name), license.ErrTemplateRead)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// LoadDescription implements ports.TemplateStore.
func (s *Store) LoadDescription(name string) ([]byte, error) {
	if !validName(name) {
		return nil, errors.Mark(errors.Newf("invalid license name %q", name), license.ErrDescriptionNotFound)
	}
	path := s.descriptionPath(name)
	s.logger.Debug("loading description", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "description file for '%s' not found", name), license.ErrDescriptionNotFound)
		}
		return nil, errors.Wrapf(err, "failed to read description %s", path)
	}
	return data, nil
}

// validName rejects names that would address a file outside the store.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
