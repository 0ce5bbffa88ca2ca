package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  *NotFoundError
		want string
	}{
		{"with id", &NotFoundError{Resource: "abbreviation", ID: "Kal"}, "abbreviation not found: Kal"},
		{"without id", &NotFoundError{Resource: "corpus"}, "corpus not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !stderrors.Is(tt.err, ErrNotFound) {
				t.Error("NotFoundError should unwrap to ErrNotFound")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("newline_boundary", "must be at least 1")
	if !strings.Contains(err.Error(), "newline_boundary") {
		t.Errorf("Error() = %q, want field name included", err.Error())
	}
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should unwrap to ErrInvalidInput")
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"with path", NewParse("XML", "corpus.xml", "unexpected EOF"), "failed to parse XML at corpus.xml: unexpected EOF"},
		{"without path", NewParse("CTS URN", "", "missing namespace"), "failed to parse CTS URN: missing namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("boom")
	wrapped := Wrap(base, "reading corpus")
	if wrapped.Error() != "reading corpus: boom" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !stderrors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := stderrors.New("boom")
	wrapped := Wrapf(base, "segmenting %d bytes", 42)
	if wrapped.Error() != "segmenting 42 bytes: boom" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsAs(t *testing.T) {
	err := NewNotFound("abbreviation", "Cn")
	if !Is(err, ErrNotFound) {
		t.Error("Is should report ErrNotFound")
	}
	var nf *NotFoundError
	if !As(err, &nf) {
		t.Error("As should extract *NotFoundError")
	}
	if nf.ID != "Cn" {
		t.Errorf("extracted ID = %q, want Cn", nf.ID)
	}
}
