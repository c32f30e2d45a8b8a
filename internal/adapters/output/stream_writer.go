package output

import (
	"io"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
)

// StreamWriter copies generated text unchanged to an io.Writer, normally
// standard output.
type StreamWriter struct {
	w    io.Writer
	name string
}

// NewStreamWriter wraps w. name is reported by Destination.
func NewStreamWriter(w io.Writer, name string) ports.OutputWriter {
	return &StreamWriter{w: w, name: name}
}

func (sw *StreamWriter) Write(content string) error {
	if _, err := io.WriteString(sw.w, content); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to write license to %s", sw.name), license.ErrWriteOutput)
	}
	return nil
}

func (sw *StreamWriter) Destination() string {
	return sw.name
}
