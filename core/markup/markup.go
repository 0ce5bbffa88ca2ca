// Package markup provides the XML helpers used around segmentation:
// angle-bracket balance counting for the scanner, well-formedness
// validation, and XPath-based text extraction for segmenting TEI and OSIS
// corpora.
//
// Security note: entity expansion is disabled during validation. Go's
// xml.Decoder does not fetch external entities by default, and internal
// entity expansion is switched off as well.
package markup

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Balance returns the number of opening and closing angle-bracket markers
// in s. The scanner keeps extending a sentence span while opens exceeds
// closes, which happens when a boundary match lands inside a tag.
func Balance(s string) (opens, closes int) {
	return strings.Count(s, "<"), strings.Count(s, ">")
}

// Balanced reports whether s contains no unclosed angle bracket.
func Balanced(s string) bool {
	opens, closes := Balance(s)
	return opens <= closes
}

// ValidationResult contains the result of XML validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Message string
}

// Validate checks data for XML well-formedness.
func Validate(data []byte) ValidationResult {
	result := ValidationResult{Valid: true}

	decoder := xml.NewDecoder(bytes.NewReader(data))

	// XXE protection (CWE-611): disable entity expansion.
	decoder.Entity = map[string]string{}

	for {
		_, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{Message: err.Error()})
			break
		}
	}

	return result
}

// ExtractText parses data and returns the inner text of every node matching
// the XPath expression, in document order. An empty expression selects the
// document root.
func ExtractText(data []byte, xpathExpr string) ([]string, error) {
	if xpathExpr == "" {
		xpathExpr = "/*"
	}
	if _, err := xpath.Compile(xpathExpr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	nodes, err := xmlquery.QueryAll(root, xpathExpr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	texts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		texts = append(texts, n.InnerText())
	}
	return texts, nil
}
