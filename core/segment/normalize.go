package segment

import "strings"

// speechDelimiters are the direct-speech quotation delimiters, escaped
// entity forms first so they win over the bare apostrophe and quote.
var speechDelimiters = [...]string{"&apos;", "&quot;", "'", "\"", "”"}

// normalizeDirectSpeech fixes irregular spacing around direct-speech
// quotation delimiters so that boundary detection behaves the same whether
// a quote hugs its adjacent word or floats between spaces.
//
// The pass tracks an open/closed toggle, reset to closed at every call,
// that flips on every delimiter encountered. A delimiter surrounded by
// exactly one space on each side (or standing at end of input on the right)
// is reattached: a closing delimiter drops the space before it, an opening
// delimiter drops the space after it. Everything else is copied verbatim.
// If no delimiter needed reattaching, the input is returned unchanged.
func normalizeDirectSpeech(text string) string {
	buf := make([]byte, 0, len(text))
	open := false
	modified := false

	for i := 0; i < len(text); {
		d := delimiterAt(text, i)
		if d == "" {
			buf = append(buf, text[i])
			i++
			continue
		}

		j := i + len(d)
		leftOK := i > 0 && text[i-1] == ' ' && (i < 2 || text[i-2] != ' ')
		atEnd := j == len(text)
		rightOK := atEnd || (text[j] == ' ' && (j+1 >= len(text) || text[j+1] != ' '))

		switch {
		case leftOK && rightOK && open:
			// Closing the quote: drop the space preceding the delimiter.
			if n := len(buf); n > 0 && buf[n-1] == ' ' {
				buf = buf[:n-1]
				modified = true
			}
			buf = append(buf, d...)
			i = j
		case leftOK && rightOK:
			// Opening the quote: drop the space following the delimiter.
			buf = append(buf, d...)
			i = j
			if !atEnd {
				i++
				modified = true
			}
		default:
			buf = append(buf, d...)
			i = j
		}
		open = !open
	}

	if !modified {
		return text
	}
	return string(buf)
}

// delimiterAt returns the direct-speech delimiter starting at pos, or "".
func delimiterAt(text string, pos int) string {
	for _, d := range speechDelimiters {
		if strings.HasPrefix(text[pos:], d) {
			return d
		}
	}
	return ""
}
