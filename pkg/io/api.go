package io

import (
	"io/fs"
	"os"
)

// FileIO is an interface for file io operations
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error
}
