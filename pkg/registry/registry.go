package registry

import "sort"

// Registry is the merged translation tree. It is built once by Build, never
// mutated afterwards, and therefore safe for concurrent lookups without
// locking.
type Registry struct {
	root *Branch
}

// Root returns the root nested object of the tree.
func (r *Registry) Root() *Branch {
	return r.root
}

// Lookup walks the tree segment by segment and returns the translation leaf at
// the path. It fails with a PathNotFoundError carrying the longest valid prefix
// when a segment is missing, or a NotALeafError when the path resolves to a
// nested object.
func (r *Registry) Lookup(p Path) (*Leaf, error) {
	node := Node(r.root)
	for i, segment := range p {
		branch, ok := node.(*Branch)
		if !ok {
			return nil, &PathNotFoundError{Path: p, Prefix: p[:i]}
		}
		child, ok := branch.children[segment]
		if !ok {
			return nil, &PathNotFoundError{Path: p, Prefix: p[:i]}
		}
		node = child
	}

	leaf, ok := node.(*Leaf)
	if !ok {
		return nil, &NotALeafError{Path: p}
	}
	return leaf, nil
}

// LookupLanguage returns the raw template stored for a language at a leaf. In
// addition to Lookup's errors it fails with a LanguageNotFoundError when the
// leaf exists but has no entry for the language.
func (r *Registry) LookupLanguage(p Path, lang string) (string, error) {
	leaf, err := r.Lookup(p)
	if err != nil {
		return "", err
	}
	tmpl, ok := leaf.Get(lang)
	if !ok {
		return "", &LanguageNotFoundError{Path: p, Language: lang}
	}
	return tmpl, nil
}

// PathExists reports whether the path resolves to a translation leaf.
func (r *Registry) PathExists(p Path) bool {
	_, err := r.Lookup(p)
	return err == nil
}

// ContainsLanguage reports whether the path resolves to a leaf holding the
// language.
func (r *Registry) ContainsLanguage(p Path, lang string) bool {
	leaf, err := r.Lookup(p)
	if err != nil {
		return false
	}
	_, ok := leaf.Get(lang)
	return ok
}

// Languages returns the sorted language codes available at a path, or nil when
// the path does not resolve to a leaf.
func (r *Registry) Languages(p Path) []string {
	leaf, err := r.Lookup(p)
	if err != nil {
		return nil
	}
	return leaf.Languages()
}

// AllLanguages returns the sorted union of language codes present anywhere in
// the tree.
func (r *Registry) AllLanguages() []string {
	seen := make(map[string]struct{})
	collectLanguages(r.root, seen)

	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func collectLanguages(n Node, seen map[string]struct{}) {
	switch node := n.(type) {
	case *Branch:
		for _, child := range node.children {
			collectLanguages(child, seen)
		}
	case *Leaf:
		for lang := range node.translations {
			seen[lang] = struct{}{}
		}
	}
}
