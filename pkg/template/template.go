// Package template renders raw translation strings by substituting named
// placeholders.
//
// A template is a plain string with zero or more `{name}` placeholders. Literal
// braces are written as `{{` and `}}`. Anything between an opening brace and the
// matching closing brace must be an identifier; everything else is a malformed
// template. Rendering a template without braces is the identity function and
// performs no parameter lookups.
package template

import (
	"fmt"
	"strings"
)

// Params maps placeholder names to their values. Values are rendered with the
// fmt package, so anything with a deterministic text form works; types
// implementing fmt.Stringer use their String method.
type Params map[string]any

// Render substitutes placeholders in tmpl with values from params.
// It fails with a MissingParamError when a referenced placeholder has no value,
// and with an UnbalancedError when a brace is stray or a placeholder is
// malformed.
func Render(tmpl string, params Params) (string, error) {
	if !strings.ContainsAny(tmpl, "{}") {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			name, next, ok := scanPlaceholder(tmpl, i)
			if !ok {
				return "", &UnbalancedError{Offset: i}
			}
			value, exists := params[name]
			if !exists {
				return "", &MissingParamError{Name: name}
			}
			fmt.Fprintf(&b, "%v", value)
			i = next
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &UnbalancedError{Offset: i}
		default:
			b.WriteByte(tmpl[i])
			i++
		}
	}

	return b.String(), nil
}

// Placeholders returns the placeholder names referenced by tmpl in order of
// first appearance, validating the brace structure along the way. It performs
// no value lookups, which makes it usable for ahead-of-time template checks.
func Placeholders(tmpl string) ([]string, error) {
	if !strings.ContainsAny(tmpl, "{}") {
		return nil, nil
	}

	var names []string
	seen := make(map[string]struct{})

	for i := 0; i < len(tmpl); {
		switch tmpl[i] {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				i += 2
				continue
			}
			name, next, ok := scanPlaceholder(tmpl, i)
			if !ok {
				return nil, &UnbalancedError{Offset: i}
			}
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			i = next
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				i += 2
				continue
			}
			return nil, &UnbalancedError{Offset: i}
		default:
			i++
		}
	}

	return names, nil
}

// scanPlaceholder reads an `{identifier}` token starting at the opening brace.
// It returns the identifier and the index just past the closing brace, or
// ok=false when the token is not a well-formed placeholder.
func scanPlaceholder(tmpl string, start int) (name string, next int, ok bool) {
	i := start + 1
	for i < len(tmpl) && isIdentChar(tmpl[i], i == start+1) {
		i++
	}
	if i == start+1 || i >= len(tmpl) || tmpl[i] != '}' {
		return "", 0, false
	}
	return tmpl[start+1 : i], i + 1, true
}

func isIdentChar(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9':
		return !first
	default:
		return false
	}
}
