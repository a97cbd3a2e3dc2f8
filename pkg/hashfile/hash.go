package hashfile

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"sort"

	"golang.org/x/crypto/md4"

	fileio "github.com/kasuboski/mediaguess/pkg/io"
)

// blockSize is how much of the file is read per iteration when digesting.
const blockSize = 8192

var digests = map[string]func() hash.Hash{
	"md4":    md4.New,
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// Supported reports whether name is a known streaming digest. The mpc and
// ed2k hashes are not streaming digests and have their own entry points.
func Supported(name string) bool {
	_, ok := digests[name]
	return ok
}

// Algorithms lists the supported streaming digests in sorted order.
func Algorithms() []string {
	out := make([]string, 0, len(digests))
	for name := range digests {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DigestFile computes every requested digest over a single read of the file.
// The result maps each algorithm to its lowercase hex digest. An unsupported
// algorithm is an error; callers filter with Supported first.
func DigestFile(fileIO fileio.FileIO, path string, algorithms []string) (map[string]string, error) {
	hashers := make(map[string]hash.Hash, len(algorithms))
	for _, name := range algorithms {
		if _, dup := hashers[name]; dup {
			continue
		}
		newHash, ok := digests[name]
		if !ok {
			return nil, fmt.Errorf("unsupported digest %q", name)
		}
		hashers[name] = newHash()
	}
	if len(hashers) == 0 {
		return map[string]string{}, nil
	}

	f, err := fileIO.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, blockSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			for _, h := range hashers {
				h.Write(buf[:n])
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	out := make(map[string]string, len(hashers))
	for name, h := range hashers {
		out[name] = fmt.Sprintf("%x", h.Sum(nil))
	}
	return out, nil
}
