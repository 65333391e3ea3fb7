package registry

import "strings"

// Path is an ordered, non-empty sequence of identifier-like segments addressing
// a node in the translation tree. Its canonical textual form joins the segments
// with dots, e.g. "common.greeting".
type Path []string

// ParsePath parses the dot-separated textual form of a path. Every segment must
// be a non-empty identifier: a letter or underscore followed by letters, digits
// or underscores.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, &InvalidPathError{Raw: s}
	}

	segments := strings.Split(s, ".")
	for _, segment := range segments {
		if !validSegment(segment) {
			return nil, &InvalidPathError{Raw: s}
		}
	}
	return Path(segments), nil
}

// String returns the canonical dot-separated form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

func validSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// child extends a path by one segment without aliasing the parent's backing
// array across merge recursion.
func (p Path) child(segment string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}
