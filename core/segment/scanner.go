package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/FocuswithJustin/LaurelLatin/core/markup"
)

// scanMode selects the active boundary matcher. The fallback path switches
// a call from the primary rule set to the bare newline matcher at most
// once; the switch never outlives the call.
type scanMode int

const (
	modePrimary scanMode = iota
	modeNewlineFallback
)

// ScanStallError reports that the scan loop failed to advance the cursor
// within one iteration. It signals a defect in the boundary rules, not bad
// input, and must never be converted into an empty result.
type ScanStallError struct {
	Pos int
}

func (e *ScanStallError) Error() string {
	return fmt.Sprintf("segment: scanner stalled at byte %d: boundary rule matched zero width", e.Pos)
}

var (
	// trailingPattern absorbs what hangs off a sentence closer: at most one
	// direct-speech delimiter, then any run of closing parentheses or
	// whitespace-preceded closing tags.
	trailingPattern = regexp.MustCompile(`^(?:['"”]|&(?:apos|quot);)?(?:\)|\s*</[^<>]*>)*`)

	// markupOnlyPattern matches a remainder consisting solely of
	// whitespace-separated closing or self-closing tags.
	markupOnlyPattern = regexp.MustCompile(`^(?:\s*(?:</[^<>]*>|<[^<>]*/>))*\s*$`)
)

// scanContext bundles every piece of mutable state owned by one
// segmentation call: the cursor, the scan mode, the id counter inside the
// factory, and the accumulated sentences. Nothing here is shared between
// calls, which is what makes a Segmenter safe for concurrent use.
type scanContext struct {
	text      string
	opts      Options
	rules     *matcher
	factory   *sentenceFactory
	mode      scanMode
	cursor    int
	exhausted bool
	sentences []Sentence
}

// run drives the scan loop until no unconsumed input remains.
func (c *scanContext) run() ([]Sentence, error) {
	for c.cursor < len(c.text) && !c.exhausted {
		start := c.cursor

		span, ok := c.advance()
		if !ok {
			span = c.fallbackSpan()
		}

		if c.opts.XML {
			span = c.extendForMarkup(span)
			span = c.absorbMarkupRemainder(span)
		}

		span += c.absorbTrailing()

		trimmed := strings.TrimSpace(span)
		if trimmed != "" && !(c.opts.XML && markupOnlyPattern.MatchString(trimmed)) {
			c.sentences = append(c.sentences, c.factory.make(trimmed))
		}

		if c.cursor == start && !c.exhausted {
			return nil, &ScanStallError{Pos: c.cursor}
		}
	}
	return c.sentences, nil
}

// advance scans from the cursor to the next boundary with the active
// matcher and returns the consumed chunk, boundary included.
func (c *scanContext) advance() (string, bool) {
	var m boundaryMatch
	var ok bool
	if c.mode == modeNewlineFallback {
		m, ok = nextNewline(c.text, c.cursor)
	} else {
		m, ok = c.rules.next(c.text, c.cursor)
	}
	if !ok {
		return "", false
	}
	chunk := c.text[c.cursor:m.end]
	c.cursor = m.end
	return chunk, true
}

// fallbackSpan recovers from a scan that found no boundary ahead of the
// cursor.
//
// With sentences already emitted, the remainder is the common trailing
// fragment and becomes the final span. With nothing emitted yet, markup
// mode defers to the markup-only absorption path, while plain mode rewinds
// to the start, switches this call to the bare newline matcher, and
// rescans; if even that matches nothing, the whole input is one span.
func (c *scanContext) fallbackSpan() string {
	if len(c.sentences) > 0 {
		span := c.text[c.cursor:]
		c.cursor = len(c.text)
		return span
	}
	if c.opts.XML {
		return ""
	}

	c.cursor = 0
	c.mode = modeNewlineFallback
	if span, ok := c.advance(); ok {
		// The input was stripped of outer whitespace before scanning, so
		// this first span contains its leading non-space text and will be
		// emitted; later fallbacks take the trailing-fragment branch.
		return span
	}
	span := c.text
	c.cursor = len(c.text)
	return span
}

// extendForMarkup keeps scanning while the span holds more opening than
// closing angle brackets, which happens when a boundary match lands inside
// a tag. If the input runs out before balance is restored, the remainder is
// absorbed verbatim.
func (c *scanContext) extendForMarkup(span string) string {
	for {
		opens, closes := markup.Balance(span)
		if opens <= closes || c.cursor >= len(c.text) {
			return span
		}
		chunk, ok := c.advance()
		if !ok {
			span += c.text[c.cursor:]
			c.cursor = len(c.text)
			return span
		}
		span += chunk
	}
}

// absorbMarkupRemainder pulls a remainder consisting solely of closing or
// self-closing tags into the current span and marks the input exhausted.
func (c *scanContext) absorbMarkupRemainder(span string) string {
	rest := c.text[c.cursor:]
	if rest == "" || !markupOnlyPattern.MatchString(rest) {
		return span
	}
	c.cursor = len(c.text)
	c.exhausted = true
	return span + rest
}

// absorbTrailing consumes trailing delimiters after the boundary: one
// direct-speech delimiter, then runs of ')' or whitespace-preceded closing
// tags. Returns whatever matched, possibly nothing.
func (c *scanContext) absorbTrailing() string {
	matched := trailingPattern.FindString(c.text[c.cursor:])
	c.cursor += len(matched)
	return matched
}
