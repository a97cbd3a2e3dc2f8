package library

import (
	"bufio"
	"os"
	"testing"
	"testing/fstest"
)

// MediaFSFromFile builds a MapFS from a fixture listing one path per line,
// returning the fs and the listed paths in file order.
func MediaFSFromFile(t *testing.T, path string) (fstest.MapFS, []string) {
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("couldn't open file: %v", err)
	}
	defer f.Close()

	testfs := fstest.MapFS{}
	paths := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		path := scanner.Text()
		testfs[path] = &fstest.MapFile{Data: []byte("media")}
		paths = append(paths, path)
	}

	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	return testfs, paths
}
