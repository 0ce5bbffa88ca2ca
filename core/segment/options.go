package segment

import (
	"fmt"

	"github.com/FocuswithJustin/LaurelLatin/core/errors"
)

// Options configures one segmentation call. Options are immutable for the
// duration of the call; the scanner re-derives all mutable state from them
// each time Segment is invoked.
type Options struct {
	// Indexing assigns sequential ids (starting at 1) to emitted sentences.
	Indexing bool

	// NewlineBoundary is the number of consecutive newlines treated as a
	// sentence boundary outside markup mode. Must be at least 1.
	NewlineBoundary int

	// SemicolonDelimiter treats ';' as a sentence closer when it is not
	// the tail of a character entity reference.
	SemicolonDelimiter bool

	// XML enables markup-aware scanning: tag-balance tracking, absorption
	// of trailing markup, and no newline-based boundaries.
	XML bool
}

// DefaultOptions returns the standard configuration: indexing on, a
// two-newline boundary, semicolons not closing sentences, markup mode off.
func DefaultOptions() Options {
	return Options{Indexing: true, NewlineBoundary: 2}
}

func (o Options) validate() error {
	if o.NewlineBoundary < 1 {
		return errors.NewValidation("newline_boundary", "must be at least 1")
	}
	return nil
}

// Fingerprint returns a stable textual encoding of the options, used as
// part of segmentation cache keys.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("ix=%t;nl=%d;semi=%t;xml=%t",
		o.Indexing, o.NewlineBoundary, o.SemicolonDelimiter, o.XML)
}
