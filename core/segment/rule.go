package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The boundary rule engine. Instead of one monolithic lookaround pattern,
// boundaries are found by an ordered list of candidate predicates evaluated
// at each candidate punctuation position. The leftmost position with any
// matching rule wins; at a given position the rules are tried in priority
// order:
//
//  1. a period not preceded by an abbreviation or a Roman-numeral letter,
//     and not followed by another period
//  2. any of ? ! : · unconditionally
//  3. a semicolon outside a partial entity reference (when enabled)
//  4. a period not preceded by an abbreviation, followed by optional
//     whitespace, optionally one markup tag, and an uppercase letter that
//     does not begin a capitalized word ending in a period
//  5. outside markup mode, a run of NewlineBoundary or more newlines
//
// Building a matcher is pure; one is constructed per segmentation call.

// romanNumeralLetters are the letters whose presence immediately before a
// period suppresses the plain-period rule, so that "legio II. decima" does
// not split after the numeral.
const romanNumeralLetters = "IVXLCDM"

// boundaryMatch is the byte range of a matched sentence closer.
type boundaryMatch struct {
	start, end int
}

type matcher struct {
	abbrevs         []string
	semicolon       bool
	xml             bool
	newlineBoundary int
}

func newMatcher(abbrevs []string, opts Options) *matcher {
	return &matcher{
		abbrevs:         abbrevs,
		semicolon:       opts.SemicolonDelimiter,
		xml:             opts.XML,
		newlineBoundary: opts.NewlineBoundary,
	}
}

// next finds the leftmost boundary at or after pos.
func (m *matcher) next(text string, pos int) (boundaryMatch, bool) {
	for i := pos; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '.':
			if m.plainPeriod(text, i) || m.uppercasePeriod(text, i) {
				return boundaryMatch{start: i, end: i + 1}, true
			}
		case '?', '!', ':', '·':
			return boundaryMatch{start: i, end: i + size}, true
		case ';':
			if m.semicolon && !precededByPartialEntity(text, i) {
				return boundaryMatch{start: i, end: i + 1}, true
			}
		case '\n':
			if !m.xml {
				j := i
				for j < len(text) && text[j] == '\n' {
					j++
				}
				if j-i >= m.newlineBoundary {
					return boundaryMatch{start: i, end: j}, true
				}
				i = j
				continue
			}
		}
		i += size
	}
	return boundaryMatch{}, false
}

// nextNewline is the bare fallback matcher: every newline is a boundary.
func nextNewline(text string, pos int) (boundaryMatch, bool) {
	if idx := strings.IndexByte(text[pos:], '\n'); idx >= 0 {
		return boundaryMatch{start: pos + idx, end: pos + idx + 1}, true
	}
	return boundaryMatch{}, false
}

// plainPeriod implements rule 1.
func (m *matcher) plainPeriod(text string, pos int) bool {
	if pos+1 < len(text) && text[pos+1] == '.' {
		return false
	}
	if pos > 0 && strings.IndexByte(romanNumeralLetters, text[pos-1]) >= 0 {
		return false
	}
	return !m.precededByAbbrev(text, pos)
}

// uppercasePeriod implements rule 4: the period closes a sentence because
// an uppercase word follows, even when a Roman numeral precedes it.
func (m *matcher) uppercasePeriod(text string, pos int) bool {
	if m.precededByAbbrev(text, pos) {
		return false
	}
	return upperLookahead(text, pos+1)
}

// precededByAbbrev reports whether the text before the period at pos ends
// with a known abbreviation that is itself preceded by whitespace, string
// start, or a closing markup bracket. Mid-word matches do not count.
func (m *matcher) precededByAbbrev(text string, pos int) bool {
	head := text[:pos]
	for _, a := range m.abbrevs {
		if !strings.HasSuffix(head, a) {
			continue
		}
		j := pos - len(a)
		if j == 0 {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(text[:j])
		if r == '>' || unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// precededByPartialEntity reports whether the semicolon at pos terminates a
// character entity reference such as &amp; rather than a clause.
func precededByPartialEntity(text string, pos int) bool {
	for _, prefix := range [...]string{"&amp", "&quot", "&apos", "&lt", "&gt", "&"} {
		if strings.HasSuffix(text[:pos], prefix) {
			return true
		}
	}
	return false
}

// upperLookahead checks the continuation after a candidate period: optional
// whitespace, optionally one markup tag plus more whitespace, then an
// uppercase letter. A single capital followed by lowercase letters and a
// trailing period is treated as an initialism, not a sentence start.
func upperLookahead(text string, pos int) bool {
	j := skipSpace(text, pos)
	if j < len(text) && text[j] == '<' {
		end := strings.IndexByte(text[j:], '>')
		if end < 0 {
			return false
		}
		j = skipSpace(text, j+end+1)
	}
	if j >= len(text) {
		return false
	}
	c := text[j]
	if c < 'A' || c > 'Z' {
		return false
	}
	k := j + 1
	for k < len(text) && text[k] >= 'a' && text[k] <= 'z' {
		k++
	}
	if k > j+1 && k < len(text) && text[k] == '.' {
		return false
	}
	return true
}

func skipSpace(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			pos++
		default:
			return pos
		}
	}
	return pos
}
