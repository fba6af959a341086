// Package items provides the in-memory descriptor for the file and
// directory entries that the filtering package evaluates. Descriptors
// carry only the attributes a filter inspects; they are built from
// strings the caller already has and never touch the file system.
package items

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/dirview/itemfilter/pkg/filtering"
)

// DefaultMimeType is returned by TypeByName when no MIME type is known
// for a file name's extension.
const DefaultMimeType = "application/octet-stream"

// FileItem is an immutable descriptor of a single file or directory
// entry in an item list.
type FileItem struct {
	name     string
	mimeType string
	hidden   bool
}

var _ filtering.Item = FileItem{}

// New creates a FileItem for the given display name and MIME type. The
// hidden flag is derived from the name via IsHiddenName.
func New(name, mimeType string) FileItem {
	return FileItem{
		name:     name,
		mimeType: mimeType,
		hidden:   IsHiddenName(name),
	}
}

// NewWithHidden creates a FileItem with an explicit hidden flag, for
// platforms where hiddenness is a file attribute rather than a naming
// convention.
func NewWithHidden(name, mimeType string, hidden bool) FileItem {
	return FileItem{
		name:     name,
		mimeType: mimeType,
		hidden:   hidden,
	}
}

// DisplayName returns the name shown in the item list.
func (i FileItem) DisplayName() string {
	return i.name
}

// IsHidden reports whether the entry is hidden.
func (i FileItem) IsHidden() bool {
	return i.hidden
}

// MimeType returns the entry's MIME type.
func (i FileItem) MimeType() string {
	return i.mimeType
}

// IsHiddenName reports whether a file name denotes a hidden entry by the
// Unix dot convention. The special entries "." and ".." are not hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// TypeByName returns the MIME type for a file name based on its
// extension alone. Media type parameters such as charset are stripped,
// and DefaultMimeType is returned when the extension is unknown.
func TypeByName(name string) string {
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		return DefaultMimeType
	}
	mediaType, _, _ := strings.Cut(mimeType, ";")
	return strings.TrimSpace(mediaType)
}
