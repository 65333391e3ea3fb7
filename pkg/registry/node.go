package registry

import "sort"

// Node is one node of the translation tree. It is a closed sum: every Node is
// either a *Branch (nested object) or a *Leaf (translation object).
type Node interface {
	node()
}

// Branch is a nested object: a mapping from segment name to child nodes.
// Its children are homogeneous, either all branches or all leaves.
type Branch struct {
	children map[string]Node
}

func (*Branch) node() {}

func newBranch() *Branch {
	return &Branch{children: make(map[string]Node)}
}

// Child returns the child node for a segment name.
func (b *Branch) Child(name string) (Node, bool) {
	child, ok := b.children[name]
	return child, ok
}

// Keys returns the branch's child segment names in ascending order.
func (b *Branch) Keys() []string {
	out := make([]string, 0, len(b.children))
	for key := range b.children {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of children.
func (b *Branch) Len() int {
	return len(b.children)
}

// Leaf is a translation object: a mapping from ISO 639-1 language code to the
// raw template string authored for that language.
type Leaf struct {
	translations map[string]string
}

func (*Leaf) node() {}

func newLeaf() *Leaf {
	return &Leaf{translations: make(map[string]string)}
}

// Get returns the raw template for a language code.
func (l *Leaf) Get(lang string) (string, bool) {
	tmpl, ok := l.translations[lang]
	return tmpl, ok
}

// Languages returns the language codes present at this leaf in ascending order.
func (l *Leaf) Languages() []string {
	out := make([]string, 0, len(l.translations))
	for lang := range l.translations {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of languages at this leaf.
func (l *Leaf) Len() int {
	return len(l.translations)
}
