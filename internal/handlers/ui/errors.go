package ui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/osla/internal/errors"
)

// ErrorPrefix starts every error line osla prints.
const ErrorPrefix = "[osla error]: "

// PrintError writes err to w on one line, followed by each of its hints.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, ErrorColor(ErrorPrefix+err.Error()))
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, WarningColor(hint))
	}
}
