// internal/prompt/template.go
package prompt

import (
	"fmt"
	"strings"
)

// Template is a parsed sentence skeleton with {name} placeholders.
// A doubled brace ("{{" or "}}") stands for a literal brace.
type Template struct {
	text     string
	segments []segment
}

// segment is either literal text or a placeholder slot, never both.
type segment struct {
	literal string
	slot    string
}

// ParseTemplate splits text into literal and placeholder segments.
func ParseTemplate(text string) (Template, error) {
	var (
		segments []segment
		lit      strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return Template{}, fmt.Errorf("%w: unclosed '{' at offset %d in %q", ErrMalformedTemplate, i, text)
			}
			name := text[i+1 : i+1+end]
			if !validName(name) {
				return Template{}, fmt.Errorf("%w: bad placeholder %q in %q", ErrMalformedTemplate, name, text)
			}
			flush()
			segments = append(segments, segment{slot: name})
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return Template{}, fmt.Errorf("%w: stray '}' at offset %d in %q", ErrMalformedTemplate, i, text)
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return Template{text: text, segments: segments}, nil
}

// MustParseTemplate is like ParseTemplate but panics on error. It is meant for
// package-level template literals.
func MustParseTemplate(text string) Template {
	t, err := ParseTemplate(text)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the unparsed template text.
func (t Template) String() string { return t.text }

// Placeholders returns the distinct placeholder names in order of first use.
func (t Template) Placeholders() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, s := range t.segments {
		if s.slot == "" {
			continue
		}
		if _, ok := seen[s.slot]; ok {
			continue
		}
		seen[s.slot] = struct{}{}
		names = append(names, s.slot)
	}
	return names
}

// Fill substitutes every placeholder with values[name] in a single pass, so a
// substituted value is never itself scanned for placeholders. A name missing
// from values is an error.
func (t Template) Fill(values map[string]string) (string, error) {
	var b strings.Builder
	for _, s := range t.segments {
		if s.slot == "" {
			b.WriteString(s.literal)
			continue
		}
		v, ok := values[s.slot]
		if !ok {
			return "", fmt.Errorf("%w: no value for {%s}", ErrUnknownCategory, s.slot)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
