package library

import "fmt"

// MediaKind classifies a file found in the library.
type MediaKind string

const (
	KindVideo    MediaKind = "video"
	KindSubtitle MediaKind = "subtitle"
)

// MediaFile is one scannable file found in the library.
type MediaFile struct {
	Path string    `json:"path"`
	Name string    `json:"name"`
	Size int64     `json:"size"`
	Kind MediaKind `json:"kind"`
}

func (f MediaFile) String() string {
	return fmt.Sprintf("name: %s, kind: %s, path: %s, size in bytes: %d",
		f.Name, f.Kind, f.Path, f.Size)
}
