package manager

import (
	"time"

	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/guesser"
	"github.com/kasuboski/mediaguess/pkg/index"
	"github.com/kasuboski/mediaguess/pkg/library"
)

// Manager ties the library walker, the guesser, and the optional fact index
// together.
type Manager struct {
	library library.Finder
	guesser *guesser.Guesser
	store   index.Store
}

// New returns a Manager. A nil store disables scan persistence.
func New(finder library.Finder, g *guesser.Guesser, store index.Store) *Manager {
	return &Manager{
		library: finder,
		guesser: g,
		store:   store,
	}
}

// ScanOptions control a library scan.
type ScanOptions struct {
	// Root is the on-disk path of the library. It is recorded with the scan
	// and joined onto file paths when hash facts need to open them.
	Root string `json:"root"`
	// FileType fixes the type for every file; autodetect when empty.
	FileType guess.FileType `json:"fileType"`
	// Facts are the facts to guess per file; defaults to the filename fact.
	Facts []string `json:"facts"`
	// Concurrency bounds the worker pool; defaults to the CPU count.
	Concurrency int `json:"concurrency"`
}

// FileResult pairs a library file with what was guessed for it.
type FileResult struct {
	File  library.MediaFile `json:"file"`
	Guess *guess.Guess      `json:"guess,omitempty"`
}

// ScanResult is the outcome of one library scan, files in walk order.
type ScanResult struct {
	ID       string       `json:"id"`
	Root     string       `json:"root"`
	Started  time.Time    `json:"started"`
	Finished time.Time    `json:"finished"`
	Files    []FileResult `json:"files"`
}
