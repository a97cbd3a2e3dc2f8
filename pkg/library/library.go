package library

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kasuboski/mediaguess/pkg/detect"
	fileio "github.com/kasuboski/mediaguess/pkg/io"
	"github.com/kasuboski/mediaguess/pkg/logger"
)

// FileSystem points the library at a directory tree to scan.
type FileSystem struct {
	FS   fs.FS
	Path string
}

// Library finds media files on disk.
type Library struct {
	media  FileSystem
	fileIO fileio.FileIO
}

var _ Finder = (*Library)(nil)

// New returns a Library scanning the given tree.
func New(media FileSystem, fileIO fileio.FileIO) *Library {
	return &Library{
		media:  media,
		fileIO: fileIO,
	}
}

// FindMediaFiles walks the library and returns every video and subtitle file
// in walk order. Hidden entries are skipped; an unreadable directory is
// skipped with a warning rather than failing the whole walk.
func (l *Library) FindMediaFiles(ctx context.Context) ([]MediaFile, error) {
	log := logger.FromCtx(ctx)

	files := []MediaFile{}
	err := l.fileIO.WalkDir(l.media.FS, ".", func(path string, d fs.DirEntry, err error) error {
		log.Debugw("media walk", "path", path)
		if err != nil {
			log.Warnw("skipping unreadable path", "path", path, "error", err)
			return fs.SkipDir
		}

		if d.IsDir() {
			if hidden(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if hidden(d.Name()) {
			return nil
		}

		kind, ok := classify(path)
		if !ok {
			return nil
		}

		file := MediaFile{
			Path: path,
			Name: d.Name(),
			Kind: kind,
		}
		if info, err := d.Info(); err == nil {
			file.Size = info.Size()
		}

		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "."
}

func classify(path string) (MediaKind, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch {
	case detect.VideoExtension(ext):
		return KindVideo, true
	case detect.SubtitleExtension(ext):
		return KindSubtitle, true
	}
	return "", false
}
