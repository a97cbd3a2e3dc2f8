package library

import (
	"context"
)

// Finder locates media files in a library.
type Finder interface {
	FindMediaFiles(ctx context.Context) ([]MediaFile, error)
}
