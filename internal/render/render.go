package render

import (
	"bytes"
	"strings"
)

// guestEmailKey is the conventional placeholder carrying the recipient
// address; when supplied it also populates Message.To.
const guestEmailKey = "guest_email"

// Message is the immutable result of filling a template.
type Message struct {
	To      string
	Subject string
	Body    string
}

// MissingPlaceholderError reports placeholders referenced by a template
// that have no supplied value. Missing lists unique names in order of
// first appearance.
type MissingPlaceholderError struct {
	Missing []string
}

func (e *MissingPlaceholderError) Error() string {
	return "render: missing values for placeholders: " + strings.Join(e.Missing, ", ")
}

// Render substitutes every {name} occurrence in subject and body with the
// matching value. Substitution is textual and order-independent: every
// occurrence of the same name receives the same value, and substituted
// values are never re-scanned for placeholders. Any referenced name absent
// from values fails the whole render; no partial output is produced.
func Render(subject, body string, values map[string]string) (Message, error) {
	var missing []string
	seen := map[string]bool{}

	renderedSubject := substitute(subject, values, &missing, seen)
	renderedBody := substitute(body, values, &missing, seen)

	if len(missing) > 0 {
		return Message{}, &MissingPlaceholderError{Missing: missing}
	}
	return Message{
		To:      values[guestEmailKey],
		Subject: renderedSubject,
		Body:    renderedBody,
	}, nil
}

// substitute streams s into a buffer, replacing recognized placeholders and
// recording names with no value. Unrecognized brace sequences pass through
// untouched.
func substitute(s string, values map[string]string, missing *[]string, seen map[string]bool) string {
	matches := placeholderPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var buf bytes.Buffer
	buf.Grow(len(s))
	last := 0
	for _, m := range matches {
		// m indices layout: [fullStart, fullEnd, nameStart, nameEnd]
		name := s[m[2]:m[3]]
		val, ok := values[name]
		if !ok {
			if !seen[name] {
				seen[name] = true
				*missing = append(*missing, name)
			}
			continue
		}
		buf.WriteString(s[last:m[0]])
		buf.WriteString(val)
		last = m[1]
	}
	buf.WriteString(s[last:])
	return buf.String()
}
