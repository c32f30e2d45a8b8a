// Package errors provides error handling for osla.
//
// It re-exports the subset of github.com/cockroachdb/errors the tool uses:
// wrapping with context, marking errors with a sentinel kind so callers can
// test them with Is, and attaching user-facing hints.
//
//	if err := load(); err != nil {
//	    return errors.Wrap(err, "failed to load template")
//	}
//	return errors.WithHint(err, "Try 'osla --list' to see available licenses.")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Mark   = crdb.Mark
	Errorf = crdb.Errorf

	WithSecondaryError = crdb.WithSecondaryError
)

// User-facing guidance
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Inspection
var (
	Is    = crdb.Is
	IsAny = crdb.IsAny
	As    = crdb.As
)
