package md2slides

import "strings"

// slidesMarker identifies the insertion point inside a reveal.js template:
// the first element carrying the "slides" class.
const slidesMarker = `class="slides"`

// MergeIntoTemplate splices a rendered deck body into a reveal.js HTML
// template, immediately inside the first element carrying class="slides".
// The body is re-indented two spaces past the element's own indentation so
// the merged document keeps the template's layout. Returns
// ErrSlidesMarkerMissing when the template has no such element.
func MergeIntoTemplate(template, body string) (string, error) {
	lines := strings.SplitAfter(template, "\n")

	for i, line := range lines {
		idx := strings.Index(line, slidesMarker)
		if idx < 0 {
			continue
		}

		// Close of the opening tag, after the marker attribute.
		rel := strings.Index(line[idx+len(slidesMarker):], ">")
		if rel < 0 {
			continue
		}
		cut := idx + len(slidesMarker) + rel + 1
		indent := leadingWhitespace(line)

		var out strings.Builder
		out.WriteString(strings.Join(lines[:i], ""))
		out.WriteString(line[:cut])
		out.WriteString("\n\n")
		out.WriteString(indentLines(body, indent+"  "))
		out.WriteString("\n")
		out.WriteString(indent)
		out.WriteString(line[cut:])
		out.WriteString(strings.Join(lines[i+1:], ""))
		return out.String(), nil
	}

	return "", ErrSlidesMarkerMissing
}

// indentLines prefixes every line of s with the given indent.
func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// leadingWhitespace returns the run of spaces and tabs at the start of s.
func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
