package output

import (
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/AntonioJCosta/osla/internal/logging"
	"go.uber.org/zap"
)

// LicenseFilename is the file generated licenses are written to.
const LicenseFilename = "LICENSE"

// FileWriter writes generated text to LICENSE inside a directory,
// replacing any previous file.
type FileWriter struct {
	path   string
	logger *zap.Logger
}

// NewFileWriter creates a FileWriter for dir. An empty dir means the
// current working directory.
func NewFileWriter(dir string, logger *zap.Logger) ports.OutputWriter {
	return &FileWriter{
		path:   filepath.Join(dir, LicenseFilename),
		logger: logging.OrNop(logger),
	}
}

// Write implements ports.OutputWriter.
func (fw *FileWriter) Write(content string) error {
	fw.logger.Debug("writing license file", zap.String("path", fw.path), zap.Int("bytes", len(content)))
	if err := os.WriteFile(fw.path, []byte(content), 0644); err != nil {
		return errors.Mark(errors.Wrap(err, "failed to write LICENSE file"), license.ErrWriteOutput)
	}
	return nil
}

// Destination implements ports.OutputWriter.
func (fw *FileWriter) Destination() string {
	return fw.path
}
