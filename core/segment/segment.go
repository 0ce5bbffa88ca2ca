// Package segment splits classical-language prose, optionally containing
// embedded XML markup, into an ordered sequence of sentences.
//
// The difficulty is ambiguous boundary punctuation: a period may close a
// sentence, mark an abbreviation (Roman praenomina, calendar terms), or
// follow a Roman numeral. Disambiguation combines an abbreviation table, a
// numeral exception, lexical lookahead, and, in markup mode, tag-balance
// tracking. See rule.go for the boundary rules and scanner.go for the
// cursor loop.
package segment

import (
	"strings"

	"github.com/FocuswithJustin/LaurelLatin/core/abbrev"
)

// Segmenter segments text into sentences. The zero value uses the builtin
// Latin abbreviation set and a slog-backed sentence log.
//
// A Segmenter holds no per-call state: every Segment invocation derives a
// fresh cursor, id counter, boundary matcher, and direct-speech toggle, so
// one instance may serve concurrent callers as long as its fields are not
// reassigned mid-call.
type Segmenter struct {
	// Abbreviations supplies the abbreviation literals consulted by the
	// boundary rules. Nil selects abbrev.Latin.
	Abbreviations abbrev.Source

	// Logger receives one diagnostic record per emitted sentence. Nil
	// selects a slog-backed default. Sink failures never abort a call.
	Logger Logger
}

// Segment splits text into sentences according to opts.
//
// The input is stripped of outer whitespace, normalized around
// direct-speech delimiters, and scanned for boundaries. Empty spans are
// discarded without consuming an id. The only error conditions are invalid
// options and the ScanStallError defect; any other input yields a possibly
// empty sequence.
func (sg *Segmenter) Segment(text string, opts Options) ([]Sentence, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	src := sg.Abbreviations
	if src == nil {
		src = abbrev.Latin()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	text = normalizeDirectSpeech(text)

	ctx := &scanContext{
		text:    text,
		opts:    opts,
		rules:   newMatcher(src.Abbreviations(), opts),
		factory: newSentenceFactory(opts.Indexing, sg.Logger),
	}
	return ctx.run()
}

// Segment splits text using a zero-value Segmenter: the builtin Latin
// abbreviation set and the default sentence log.
func Segment(text string, opts Options) ([]Sentence, error) {
	var sg Segmenter
	return sg.Segment(text, opts)
}
