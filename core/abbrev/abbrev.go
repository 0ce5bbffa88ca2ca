// Package abbrev provides abbreviation sources for the sentence segmenter.
//
// An abbreviation literal is matched immediately before a candidate period
// and suppresses the sentence boundary there. Literals are stored without
// the trailing period ("Cn" suppresses the boundary in "Cn. Pompeius").
package abbrev

// Source supplies the abbreviation literals consulted by the boundary rule
// engine. The full set must be available before rule construction begins.
type Source interface {
	// Abbreviations returns the abbreviation literals in a stable order.
	Abbreviations() []string
}

// List is a Source backed by a static slice.
type List []string

// Abbreviations returns the list itself.
func (l List) Abbreviations() []string { return l }

// Merge combines several sources into one, preserving order and dropping
// duplicates.
func Merge(sources ...Source) List {
	seen := make(map[string]bool)
	var merged List
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, a := range src.Abbreviations() {
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			merged = append(merged, a)
		}
	}
	return merged
}
