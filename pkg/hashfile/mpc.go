package hashfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	fileio "github.com/kasuboski/mediaguess/pkg/io"
)

// mpcWindow is how much of each end of the file goes into the hash.
const mpcWindow = 65536

// ErrFileTooSmall means the file is under the two windows the mpc hash needs.
var ErrFileTooSmall = errors.New("file is too small for mpc hash")

// MpcHash computes the OpenSubtitles-style hash: the file size plus the
// little-endian 64-bit words of the first and last 64 KiB, all summed with
// wraparound, rendered as 16 hex digits.
func MpcHash(fileIO fileio.FileIO, path string) (string, error) {
	f, err := fileIO.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	size := info.Size()
	if size < mpcWindow*2 {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooSmall, size)
	}

	sum := uint64(size)

	buf := make([]byte, mpcWindow)
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", fmt.Errorf("failed to read head: %w", err)
	}
	sum += sumWords(buf)

	if _, err := f.Seek(size-mpcWindow, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek tail: %w", err)
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", fmt.Errorf("failed to read tail: %w", err)
	}
	sum += sumWords(buf)

	return fmt.Sprintf("%016x", sum), nil
}

func sumWords(buf []byte) uint64 {
	var sum uint64
	for i := 0; i+8 <= len(buf); i += 8 {
		sum += binary.LittleEndian.Uint64(buf[i : i+8])
	}
	return sum
}
