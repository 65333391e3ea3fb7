package registry

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/dmitrymomot/translatable/pkg/source"
)

// builder accumulates the merged tree during construction. It also remembers
// which file first contributed each tree path so structural conflicts can name
// both sides.
type builder struct {
	root    *Branch
	origins map[string]string
	seek    SeekMode
	overlap Overlap
	log     *slog.Logger
}

// Build parses and merges discovered files into one immutable Registry.
// Files are sorted by lowercased path; SeekUnalphabetical reverses the order.
// Construction is fail-fast: the first structural or validation error aborts
// and no partial registry is observable.
func Build(files []source.File, opts ...BuildOption) (*Registry, error) {
	b := &builder{
		root:    newBranch(),
		origins: make(map[string]string),
		seek:    SeekAlphabetical,
		overlap: OverlapOverwrite,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	if !b.seek.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeekMode, string(b.seek))
	}
	if !b.overlap.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOverlap, string(b.overlap))
	}

	ordered := make([]source.File, len(files))
	copy(ordered, files)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := strings.ToLower(ordered[i].Path), strings.ToLower(ordered[j].Path)
		if pi != pj {
			return pi < pj
		}
		return ordered[i].Path < ordered[j].Path
	})
	if b.seek == SeekUnalphabetical {
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	for _, file := range ordered {
		b.log.Debug("merging translation file", "file", file.Path)

		doc, err := decodeDocument(file.Path, file.Data)
		if err != nil {
			return nil, err
		}
		node, err := parseNode(file.Path, nil, doc)
		if err != nil {
			return nil, err
		}
		srcRoot, ok := node.(*Branch)
		if !ok {
			return nil, &InvalidRootError{File: file.Path}
		}
		if err := b.merge(b.root, srcRoot, nil, file.Path); err != nil {
			return nil, err
		}
	}

	return &Registry{root: b.root}, nil
}

// merge folds a freshly parsed subtree into the accumulator at path p.
func (b *builder) merge(dst, src *Branch, p Path, file string) error {
	for _, key := range src.Keys() {
		child := src.children[key]
		childPath := p.child(key)

		existing, exists := dst.children[key]
		if !exists {
			if err := b.checkSiblings(dst, child, p, childPath, file); err != nil {
				return err
			}
			dst.children[key] = child
			b.recordOrigins(child, childPath, file)
			continue
		}

		switch existingNode := existing.(type) {
		case *Branch:
			childBranch, ok := child.(*Branch)
			if !ok {
				// An empty object never pins the node kind, so a later leaf
				// may claim its place, provided its siblings agree.
				if existingNode.Len() == 0 {
					if err := b.checkSiblings(dst, child, p, childPath, file); err != nil {
						return err
					}
					dst.children[key] = child
					b.recordOrigins(child, childPath, file)
					continue
				}
				return &ConflictError{Path: childPath, File: b.originOf(childPath), OtherFile: file}
			}
			// Filling a previously empty object fixes its kind now.
			if existingNode.Len() == 0 && childBranch.Len() > 0 {
				if err := b.checkSiblings(dst, childBranch, p, childPath, file); err != nil {
					return err
				}
			}
			if err := b.merge(existingNode, childBranch, childPath, file); err != nil {
				return err
			}
		case *Leaf:
			childLeaf, ok := child.(*Leaf)
			if !ok {
				// An empty nested object merges as a no-op.
				if childBranch, isBranch := child.(*Branch); isBranch && childBranch.Len() == 0 {
					continue
				}
				return &ConflictError{Path: childPath, File: b.originOf(childPath), OtherFile: file}
			}
			b.mergeLeaf(existingNode, childLeaf, childPath, file)
		}
	}

	return nil
}

// mergeLeaf applies the overlap policy per language key.
func (b *builder) mergeLeaf(dst, src *Leaf, p Path, file string) {
	for _, lang := range src.Languages() {
		value := src.translations[lang]
		if _, exists := dst.translations[lang]; !exists {
			dst.translations[lang] = value
			continue
		}
		if b.overlap == OverlapOverwrite {
			b.log.Debug("overwriting translation",
				"path", p.String(), "language", lang, "file", file)
			dst.translations[lang] = value
		} else {
			b.log.Debug("ignoring duplicate translation",
				"path", p.String(), "language", lang, "file", file)
		}
	}
}

// checkSiblings enforces homogeneity across files: a new child inserted into an
// existing branch must be of the same kind as the children already there.
// Empty nested objects pin nothing and are ignored on both sides.
func (b *builder) checkSiblings(dst *Branch, child Node, parent, childPath Path, file string) error {
	childBranch, childIsBranch := child.(*Branch)
	if childIsBranch && childBranch.Len() == 0 {
		return nil
	}

	for _, sibKey := range dst.Keys() {
		if sibBranch, ok := dst.children[sibKey].(*Branch); ok && sibBranch.Len() == 0 {
			continue
		}
		_, siblingIsBranch := dst.children[sibKey].(*Branch)
		if childIsBranch != siblingIsBranch {
			return &ConflictError{
				Path:      childPath,
				File:      b.originOf(parent.child(sibKey)),
				OtherFile: file,
			}
		}
		return nil
	}
	return nil
}

// recordOrigins remembers the contributing file for every path in a subtree.
func (b *builder) recordOrigins(n Node, p Path, file string) {
	b.origins[p.String()] = file
	if branch, ok := n.(*Branch); ok {
		for key, child := range branch.children {
			b.recordOrigins(child, p.child(key), file)
		}
	}
}

func (b *builder) originOf(p Path) string {
	if file, ok := b.origins[p.String()]; ok {
		return file
	}
	return "<registry>"
}
