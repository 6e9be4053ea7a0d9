// FILE: pkg/media/resolver.go
package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind distinguishes the media types a step can attach.
type Kind string

const (
	KindAudio Kind = "audio"
	KindImage Kind = "image"
)

// ErrMediaNotFound signals a referenced file that does not exist on disk.
// Callers are expected to skip the attachment and continue.
var ErrMediaNotFound = errors.New("media file not found")

// Resolver loads media files referenced by the content document from a
// base directory, one subdirectory per kind (audio/, image/).
type Resolver struct {
	baseDir string
}

func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

// Resolve returns the raw bytes of the named media file.
func (r *Resolver) Resolve(kind Kind, name string) ([]byte, error) {
	// Content files are editable by hand; refuse anything that escapes the
	// media directory.
	if strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: invalid name %q", ErrMediaNotFound, name)
	}

	path := filepath.Join(r.baseDir, string(kind), name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMediaNotFound, path)
		}
		return nil, err
	}
	return data, nil
}
