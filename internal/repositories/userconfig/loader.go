package userconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/AntonioJCosta/osla/internal/logging"
	"go.uber.org/zap"
)

const configDir = ".config/OSLA"
const configFilename = "osla.conf"

// DefaultConfigPath returns $HOME/.config/OSLA/osla.conf.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "failed to determine home directory"), license.ErrConfig)
	}
	return filepath.Join(home, configDir, configFilename), nil
}

// FileConfigLoader reads the key=value configuration file.
type FileConfigLoader struct {
	path   string
	logger *zap.Logger
}

// NewFileConfigLoader creates a loader for the file at path. An empty path
// means DefaultConfigPath, resolved by the first Load.
func NewFileConfigLoader(path string, logger *zap.Logger) ports.ConfigLoader {
	return &FileConfigLoader{path: path, logger: logging.OrNop(logger)}
}

// Path implements ports.ConfigLoader.
func (l *FileConfigLoader) Path() string {
	return l.path
}

/*
Load implements ports.ConfigLoader.
When the file does not exist it is created with the default values, which
are then returned. Otherwise recognised keys override the defaults.
*/
func (l *FileConfigLoader) Load() (license.Config, error) {
	cfg := license.DefaultConfig()

	if l.path == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return license.Config{}, err
		}
		l.path = path
	}

	file, err := os.Open(l.path)
	if os.IsNotExist(err) {
		if err := l.writeDefaults(); err != nil {
			return license.Config{}, err
		}
		l.logger.Debug("default configuration file created", zap.String("path", l.path))
		return cfg, nil
	}
	if err != nil {
		return license.Config{}, errors.Mark(errors.Wrapf(err, "failed to open configuration file %s", l.path), license.ErrConfig)
	}
	defer file.Close()

	if err := parseConfig(file, &cfg); err != nil {
		return license.Config{}, errors.Mark(errors.Wrapf(err, "failed to read configuration file %s", l.path), license.ErrConfig)
	}
	l.logger.Debug("configuration loaded successfully",
		zap.String("path", l.path),
		zap.String("author", cfg.Author),
		zap.String("year", cfg.Year),
		zap.String("default_license", cfg.DefaultLicense))
	return cfg, nil
}

func (l *FileConfigLoader) writeDefaults() error {
	dir := filepath.Dir(l.path)
	if err := ensureDirectoryExists(dir); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to create config directory"), license.ErrConfig)
	}

	d := license.DefaultConfig()
	content := fmt.Sprintf("author=%s\nyear=%s\ndefault_license=%s\n", d.Author, d.Year, d.DefaultLicense)
	if err := os.WriteFile(l.path, []byte(content), 0644); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to create default configuration file %s", l.path), license.ErrConfig)
	}
	return nil
}
