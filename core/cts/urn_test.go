package cts

import (
	"testing"

	"github.com/FocuswithJustin/LaurelLatin/core/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  URN
	}{
		{
			"namespace only",
			"urn:cts:latinLit",
			URN{Namespace: "latinLit"},
		},
		{
			"text group",
			"urn:cts:latinLit:phi0448",
			URN{Namespace: "latinLit", TextGroup: "phi0448"},
		},
		{
			"work",
			"urn:cts:latinLit:phi0448.phi001",
			URN{Namespace: "latinLit", TextGroup: "phi0448", Work: "phi001"},
		},
		{
			"version with hyphen",
			"urn:cts:latinLit:phi0448.phi001.perseus-lat2",
			URN{Namespace: "latinLit", TextGroup: "phi0448", Work: "phi001", Version: "perseus-lat2"},
		},
		{
			"passage",
			"urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1",
			URN{
				Namespace: "latinLit", TextGroup: "phi0448", Work: "phi001", Version: "perseus-lat2",
				Passage: Passage{Start: []string{"1", "1"}},
			},
		},
		{
			"passage range",
			"urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1-1.3",
			URN{
				Namespace: "latinLit", TextGroup: "phi0448", Work: "phi001", Version: "perseus-lat2",
				Passage: Passage{Start: []string{"1", "1"}, End: []string{"1", "3"}},
			},
		},
		{
			"subreference node",
			"urn:cts:greekLit:tlg0012.tlg001.perseus-grc2:1.10a",
			URN{
				Namespace: "greekLit", TextGroup: "tlg0012", Work: "tlg001", Version: "perseus-grc2",
				Passage: Passage{Start: []string{"1", "10a"}},
			},
		},
		{
			"named citation node",
			"urn:cts:latinLit:phi0448.phi001:pr.2",
			URN{
				Namespace: "latinLit", TextGroup: "phi0448", Work: "phi001",
				Passage: Passage{Start: []string{"pr", "2"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got.Namespace != tt.want.Namespace || got.TextGroup != tt.want.TextGroup ||
				got.Work != tt.want.Work || got.Version != tt.want.Version {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if p, w := got.Passage.String(), tt.want.Passage.String(); p != w {
				t.Errorf("Parse(%q) passage = %q, want %q", tt.input, p, w)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"wrong protocol", "urn:isbn:0451450523"},
		{"not a urn", "phi0448.phi001"},
		{"trailing colon", "urn:cts:latinLit:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("Parse(%q) error %v does not wrap ErrInvalidInput", tt.input, err)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"urn:cts:latinLit",
		"urn:cts:latinLit:phi0448",
		"urn:cts:latinLit:phi0448.phi001.perseus-lat2",
		"urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1",
		"urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1-1.3",
	}

	for _, input := range inputs {
		urn, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if got := urn.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestPassageFor(t *testing.T) {
	urn, err := Parse("urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1")
	if err != nil {
		t.Fatal(err)
	}

	cited, err := urn.PassageFor(3)
	if err != nil {
		t.Fatalf("PassageFor failed: %v", err)
	}
	want := "urn:cts:latinLit:phi0448.phi001.perseus-lat2:1.1.3"
	if got := cited.String(); got != want {
		t.Errorf("PassageFor(3) = %q, want %q", got, want)
	}
	// Source URN is unchanged.
	if urn.Passage.String() != "1.1" {
		t.Errorf("source passage mutated to %q", urn.Passage.String())
	}

	if _, err := urn.PassageFor(0); err == nil {
		t.Error("PassageFor(0) should fail")
	}

	ranged, err := Parse("urn:cts:latinLit:phi0448.phi001:1.1-1.3")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ranged.PassageFor(1); err == nil {
		t.Error("PassageFor on a range should fail")
	}

	ns, err := Parse("urn:cts:latinLit")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ns.PassageFor(1); err == nil {
		t.Error("PassageFor on a namespace-level URN should fail")
	}
}

func TestContains(t *testing.T) {
	parse := func(s string) *URN {
		t.Helper()
		urn, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		return urn
	}

	tests := []struct {
		name  string
		outer string
		inner string
		want  bool
	}{
		{
			"work contains passage",
			"urn:cts:latinLit:phi0448.phi001",
			"urn:cts:latinLit:phi0448.phi001:1.1",
			true,
		},
		{
			"chapter contains sentence",
			"urn:cts:latinLit:phi0448.phi001:1",
			"urn:cts:latinLit:phi0448.phi001:1.4",
			true,
		},
		{
			"sibling chapters disjoint",
			"urn:cts:latinLit:phi0448.phi001:1",
			"urn:cts:latinLit:phi0448.phi001:2.1",
			false,
		},
		{
			"range contains midpoint",
			"urn:cts:latinLit:phi0448.phi001:1.1-1.3",
			"urn:cts:latinLit:phi0448.phi001:1.2",
			true,
		},
		{
			"range excludes successor",
			"urn:cts:latinLit:phi0448.phi001:1.1-1.3",
			"urn:cts:latinLit:phi0448.phi001:1.4",
			false,
		},
		{
			"different work",
			"urn:cts:latinLit:phi0448.phi001",
			"urn:cts:latinLit:phi0448.phi002:1.1",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse(tt.outer).Contains(parse(tt.inner)); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}
