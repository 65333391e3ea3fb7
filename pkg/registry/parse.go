package registry

import (
	"encoding/json"
	"path"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/translatable/pkg/iso639"
	"github.com/dmitrymomot/translatable/pkg/template"
)

// decodeDocument decodes one discovered file into a generic key/value tree.
// The serialization syntax is picked by file extension; anything else is not a
// translation file and fails construction rather than being skipped.
func decodeDocument(file string, data []byte) (map[string]any, error) {
	var doc map[string]any

	switch strings.ToLower(path.Ext(file)) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{File: file, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{File: file, Err: err}
		}
	case ".json":
		if len(data) > 0 {
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, &ParseError{File: file, Err: err}
			}
		}
	default:
		return nil, &InvalidFileError{File: file}
	}

	return doc, nil
}

// parseNode classifies a decoded object into a tree node. An object whose
// values are all strings becomes a leaf with ISO 639-1 validated keys and
// brace-checked templates; an object whose values are all objects becomes a
// branch whose children are in turn all leaves or all non-empty branches.
// Mixing the two kinds at any level, or any value that is neither, is a
// structural error. An empty object is an empty branch and pins nothing.
func parseNode(file string, p Path, doc map[string]any) (Node, error) {
	if len(doc) == 0 {
		return newBranch(), nil
	}

	// Keys are visited in sorted order: the decoders do not preserve document
	// order, so sorting is what keeps the first reported violation
	// deterministic across runs.
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var branch *Branch
	var leaf *Leaf
	var hasLeafChild, hasBranchChild bool

	for _, key := range keys {
		switch value := doc[key].(type) {
		case string:
			if branch != nil {
				return nil, &MixedContentError{File: file, Path: p}
			}
			if !iso639.IsValid(key) {
				return nil, newInvalidLanguageError(file, p, key)
			}
			if _, err := template.Placeholders(value); err != nil {
				return nil, &InvalidTemplateError{File: file, Path: p, Language: key, Err: err}
			}
			if leaf == nil {
				leaf = newLeaf()
			}
			leaf.translations[key] = value
		case map[string]any:
			if leaf != nil {
				return nil, &MixedContentError{File: file, Path: p}
			}
			child, err := parseNode(file, p.child(key), value)
			if err != nil {
				return nil, err
			}
			switch c := child.(type) {
			case *Leaf:
				hasLeafChild = true
			case *Branch:
				if c.Len() > 0 {
					hasBranchChild = true
				}
			}
			if hasLeafChild && hasBranchChild {
				return nil, &MixedContentError{File: file, Path: p}
			}
			if branch == nil {
				branch = newBranch()
			}
			branch.children[key] = child
		default:
			return nil, &MixedContentError{File: file, Path: p}
		}
	}

	if leaf != nil {
		return leaf, nil
	}
	return branch, nil
}
