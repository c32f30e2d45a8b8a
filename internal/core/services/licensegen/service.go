package licensegen

import (
	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/AntonioJCosta/osla/internal/logging"
	"go.uber.org/zap"
)

type service struct {
	aliases     ports.AliasResolver
	store       ports.TemplateStore
	substituter ports.Substituter
	logger      *zap.Logger
}

// NewService creates a new license generation service.
// It panics if aliases, store or substituter are nil.
func NewService(
	aliases ports.AliasResolver,
	store ports.TemplateStore,
	substituter ports.Substituter,
	logger *zap.Logger,
) ports.LicenseGenerator {
	if aliases == nil {
		panic("alias resolver cannot be nil")
	}
	if store == nil {
		panic("template store cannot be nil")
	}
	if substituter == nil {
		panic("substituter cannot be nil")
	}
	return &service{
		aliases:     aliases,
		store:       store,
		substituter: substituter,
		logger:      logging.OrNop(logger),
	}
}

// Generate implements ports.LicenseGenerator.
func (s *service) Generate(name string, cfg license.Config) (license.Generated, error) {
	canonical := s.resolve(name)
	s.logger.Debug("generating license",
		zap.String("requested", name),
		zap.String("license", canonical),
		zap.String("dir", s.store.LicensesDir()))

	content, err := s.store.LoadTemplate(canonical)
	if err != nil {
		if errors.Is(err, license.ErrTemplateNotFound) {
			s.logger.Debug("template lookup failed", zap.Error(err))
			return license.Generated{}, notFoundError(name, canonical, err)
		}
		return license.Generated{}, errors.Wrapf(err, "failed to load license '%s'", name)
	}

	filled := s.substituter.Substitute(string(content), cfg.Year, cfg.Author)
	return license.Generated{
		Requested: name,
		Canonical: canonical,
		Content:   filled,
	}, nil
}

// resolve returns the canonical name for an alias, or name itself when it
// is not an alias.
func (s *service) resolve(name string) string {
	if canonical, ok := s.aliases.Resolve(name); ok {
		return canonical
	}
	return name
}

// notFoundError names the license as the user typed it; the store error is
// kept as secondary detail only.
func notFoundError(requested, canonical string, cause error) error {
	var err error
	if canonical != requested {
		err = errors.Newf("license '%s' (%s) not found", requested, canonical)
	} else {
		err = errors.Newf("license '%s' not found", requested)
	}
	err = errors.Mark(errors.WithSecondaryError(err, cause), license.ErrTemplateNotFound)
	return errors.WithHintf(err, "Try '%s --list' to see available licenses.", license.ProgramName)
}
