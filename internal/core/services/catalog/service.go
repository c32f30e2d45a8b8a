package catalog

import (
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/AntonioJCosta/osla/internal/logging"
	"go.uber.org/zap"
)

type service struct {
	aliases ports.AliasResolver
	store   ports.TemplateStore
	logger  *zap.Logger
}

// NewService creates a new catalog service.
// It panics if aliases or store are nil.
func NewService(aliases ports.AliasResolver, store ports.TemplateStore, logger *zap.Logger) ports.CatalogService {
	if aliases == nil {
		panic("alias resolver cannot be nil")
	}
	if store == nil {
		panic("template store cannot be nil")
	}
	return &service{aliases: aliases, store: store, logger: logging.OrNop(logger)}
}

// Source implements ports.CatalogService.
func (s *service) Source() string {
	return s.store.LicensesDir()
}

// List returns every template name, sorted, with the aliases that resolve
// to it.
func (s *service) List() ([]license.Info, error) {
	s.logger.Debug("listing licenses", zap.String("dir", s.store.LicensesDir()))
	names, err := s.store.ListTemplates()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list licenses")
	}

	entries := s.aliases.Entries()
	infos := make([]license.Info, 0, len(names))
	for _, name := range names {
		info := license.Info{Name: name, Aliases: []string{}}
		for _, e := range entries {
			if strings.EqualFold(e.License, name) {
				info.Aliases = append(info.Aliases, e.Alias)
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Describe returns the description of a license name or alias verbatim.
func (s *service) Describe(name string) (string, error) {
	canonical := name
	if resolved, ok := s.aliases.Resolve(name); ok {
		canonical = resolved
	}
	s.logger.Debug("printing description", zap.String("requested", name), zap.String("license", canonical))

	data, err := s.store.LoadDescription(canonical)
	if err != nil {
		if errors.Is(err, license.ErrDescriptionNotFound) {
			s.logger.Debug("description lookup failed", zap.Error(err))
			notFound := errors.Mark(
				errors.WithSecondaryError(errors.Newf("description file for '%s' not found", name), err),
				license.ErrDescriptionNotFound)
			return "", errors.WithHintf(notFound, "Try '%s --list' to see available licenses.", license.ProgramName)
		}
		return "", errors.Wrapf(err, "failed to describe license '%s'", name)
	}
	return string(data), nil
}

// Search returns the templates whose name or first line contains keyword,
// ignoring case. Templates that cannot be read are skipped.
func (s *service) Search(keyword string) ([]license.SearchMatch, error) {
	s.logger.Debug("searching licenses", zap.String("keyword", keyword), zap.String("dir", s.store.LicensesDir()))
	names, err := s.store.ListTemplates()
	if err != nil {
		return nil, errors.Wrap(err, "failed to search licenses")
	}

	matches := []license.SearchMatch{}
	for _, name := range names {
		firstLine, err := s.store.FirstLine(name)
		if err != nil {
			s.logger.Debug("skipping unreadable template", zap.String("license", name), zap.Error(err))
			continue
		}
		if containsFold(name, keyword) || containsFold(firstLine, keyword) {
			matches = append(matches, license.SearchMatch{Name: name, FirstLine: firstLine})
		}
	}
	return matches, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
