// Package cts parses and manipulates CTS URNs, the canonical citation
// scheme for classical texts (e.g. "urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1").
package cts

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/LaurelLatin/core/errors"
)

// URN is a parsed CTS URN.
type URN struct {
	// Namespace is the CTS namespace (e.g., "latinLit", "greekLit").
	Namespace string `json:"namespace"`

	// TextGroup identifies the author or collection (e.g., "phi0448").
	TextGroup string `json:"text_group,omitempty"`

	// Work identifies the work within the group (e.g., "phi001").
	Work string `json:"work,omitempty"`

	// Version is the edition or translation label (e.g., "perseus-lat2").
	Version string `json:"version,omitempty"`

	// Exemplar is the exemplar label, rarely present.
	Exemplar string `json:"exemplar,omitempty"`

	// Passage is the citation part after the final colon, empty for
	// work-level URNs.
	Passage Passage `json:"passage,omitempty"`
}

// Passage is a dotted citation path, optionally a range.
type Passage struct {
	// Start is the citation path (e.g., ["1", "1"] for "1.1").
	Start []string `json:"start,omitempty"`

	// End is the closing path of a range (e.g., ["1", "3"] for "1.1-1.3").
	End []string `json:"end,omitempty"`
}

// urnGrammar is the participle grammar for CTS URNs.
// Examples: "urn:cts:latinLit", "urn:cts:latinLit:phi0448.phi001",
// "urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1-1.3"
//
type urnGrammar struct {
	Scheme    string    `parser:"@Ident ':'"`
	Protocol  string    `parser:"@Ident ':'"`
	Namespace string    `parser:"@Ident"`
	Work      *workPart `parser:"( ':' @@ )?"`
}

type workPart struct {
	TextGroup string       `parser:"@Ident"`
	Work      string       `parser:"( '.' @Ident )?"`
	Version   string       `parser:"( '.' @Ident )?"`
	Exemplar  string       `parser:"( '.' @Ident )?"`
	Passage   *passagePart `parser:"( ':' @@ )?"`
}

// Citation nodes are usually numeric ("1.1") but named nodes such as "pr"
// for a praefatio appear in some editions.
//
type passagePart struct {
	Start []string `parser:"@(Num | Ident) ( '.' @(Num | Ident) )*"`
	End   []string `parser:"( '-' @(Num | Ident) ( '.' @(Num | Ident) )* )?"`
}

// urnLexer defines the lexer for CTS URNs.
// Note: Num is tried first so citation nodes like "1" or "12a" never lex as
// identifiers; Ident allows interior hyphens for labels like "perseus-lat2".
var urnLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Num", Pattern: `[0-9]+[a-z]*`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*(?:-[A-Za-z0-9_]+)*`},
	{Name: "Punct", Pattern: `[:.\-]`},
})

// urnParser is the participle parser for CTS URNs.
var urnParser = participle.MustBuild[urnGrammar](
	participle.Lexer(urnLexer),
)

// Parse parses a CTS URN string.
// Supported formats:
//   - "urn:cts:latinLit" (namespace only)
//   - "urn:cts:latinLit:phi0448" (text group)
//   - "urn:cts:latinLit:phi0448.phi001.perseus-lat2" (version)
//   - "urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1" (passage)
//   - "urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1-1.3" (range)
func Parse(s string) (*URN, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.NewParse("CTS URN", "", "empty string")
	}

	parsed, err := urnParser.ParseString("", s)
	if err != nil {
		return nil, errors.NewParse("CTS URN", "", s+": "+err.Error())
	}
	if parsed.Scheme != "urn" || parsed.Protocol != "cts" {
		return nil, errors.NewParse("CTS URN", "", "scheme must be urn:cts, got "+parsed.Scheme+":"+parsed.Protocol)
	}

	urn := &URN{Namespace: parsed.Namespace}

	if parsed.Work != nil {
		urn.TextGroup = parsed.Work.TextGroup
		urn.Work = parsed.Work.Work
		urn.Version = parsed.Work.Version
		urn.Exemplar = parsed.Work.Exemplar

		if parsed.Work.Passage != nil {
			urn.Passage.Start = parsed.Work.Passage.Start
			urn.Passage.End = parsed.Work.Passage.End
		}
	}

	return urn, nil
}

// String returns the canonical URN representation.
func (u *URN) String() string {
	var sb strings.Builder
	sb.WriteString("urn:cts:")
	sb.WriteString(u.Namespace)

	if u.TextGroup != "" {
		sb.WriteString(":")
		sb.WriteString(u.TextGroup)
		for _, part := range []string{u.Work, u.Version, u.Exemplar} {
			if part == "" {
				break
			}
			sb.WriteString(".")
			sb.WriteString(part)
		}

		if len(u.Passage.Start) > 0 {
			sb.WriteString(":")
			sb.WriteString(u.Passage.String())
		}
	}

	return sb.String()
}

// String returns the citation part of a URN ("1.1" or "1.1-1.3").
func (p Passage) String() string {
	if len(p.Start) == 0 {
		return ""
	}
	s := strings.Join(p.Start, ".")
	if len(p.End) > 0 {
		s += "-" + strings.Join(p.End, ".")
	}
	return s
}

// IsRange returns true if the URN cites a passage range.
func (u *URN) IsRange() bool {
	return len(u.Passage.End) > 0
}

// PassageFor returns a copy of the URN whose passage is extended by a
// 1-based sentence ordinal, citing one sentence within the passage.
func (u *URN) PassageFor(id int) (*URN, error) {
	if id < 1 {
		return nil, errors.NewValidation("id", "must be at least 1")
	}
	if u.IsRange() {
		return nil, errors.NewValidation("urn", "cannot extend a passage range")
	}
	if u.TextGroup == "" {
		return nil, errors.NewValidation("urn", "namespace-level URN has no citable passage")
	}

	out := *u
	out.Passage.Start = append(append([]string(nil), u.Passage.Start...), strconv.Itoa(id))
	return &out, nil
}

// Contains returns true if this URN contains the other URN's citation.
func (u *URN) Contains(other *URN) bool {
	if u.Namespace != other.Namespace || u.TextGroup != other.TextGroup || u.Work != other.Work {
		return false
	}

	// A work-level URN contains every passage of the work.
	if len(u.Passage.Start) == 0 {
		return true
	}

	if u.IsRange() {
		return comparePaths(u.Passage.Start, other.Passage.Start) <= 0 &&
			comparePaths(other.Passage.Start, u.Passage.End) <= 0
	}

	return hasPathPrefix(other.Passage.Start, u.Passage.Start)
}

// comparePaths orders two citation paths node by node, numerically where
// both nodes are numeric. A proper prefix sorts before its extensions.
func comparePaths(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		an, aerr := strconv.Atoi(a[i])
		bn, berr := strconv.Atoi(b[i])
		if aerr == nil && berr == nil {
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			continue
		}
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func hasPathPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}
