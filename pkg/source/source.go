// Package source provides the file-discovery collaborators the registry
// builder consumes.
//
// A Source lists every file under a configured root as (relative path, raw
// content) pairs. Sources never filter: files that are not translation files
// are reported to the builder, which rejects them. Discovery is the only phase
// allowed to perform I/O; once the registry is built no Source is consulted
// again.
//
// Two implementations are provided: Dir walks any fs.FS, and S3 lists and
// fetches a bucket prefix for deployments that keep translations in central
// object storage. Anything implementing the one-method Source interface can be
// injected instead.
package source

import "context"

// File is one discovered translation file: a slash-separated path relative to
// the configured root and its raw content.
type File struct {
	Path string
	Data []byte
}

// Source lists every file under a root. Discovery may block on I/O, hence the
// context; it happens once, during registry construction.
type Source interface {
	Files(ctx context.Context) ([]File, error)
}

// Static is a fixed in-memory file list, mainly useful in tests and for
// embedding translations directly in code.
type Static []File

// Files returns the static list unchanged.
func (s Static) Files(context.Context) ([]File, error) {
	return []File(s), nil
}
