package hashfile

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/crypto/md4"

	fileio "github.com/kasuboski/mediaguess/pkg/io"
)

// ed2kChunkSize is the fixed eDonkey chunk length. A var so tests can
// exercise multi-chunk hashing without gigabyte fixtures.
var ed2kChunkSize = 9728000

// Ed2kLink computes the eDonkey hash and renders it as a full ed2k link.
// Files up to one chunk hash directly; larger files hash the concatenation
// of their per-chunk md4 digests.
func Ed2kLink(fileIO fileio.FileIO, path string) (string, error) {
	f, err := fileIO.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	var chunkDigests [][]byte
	buf := make([]byte, ed2kChunkSize)
	for {
		n, err := io.ReadFull(f, buf)
		if n > 0 {
			h := md4.New()
			h.Write(buf[:n])
			chunkDigests = append(chunkDigests, h.Sum(nil))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	var sum []byte
	if len(chunkDigests) == 1 {
		sum = chunkDigests[0]
	} else {
		h := md4.New()
		for _, d := range chunkDigests {
			h.Write(d)
		}
		sum = h.Sum(nil)
	}

	return fmt.Sprintf("ed2k://|file|%s|%d|%x|/", filepath.Base(path), info.Size(), sum), nil
}
