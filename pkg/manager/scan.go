package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kasuboski/mediaguess/pkg/guess"
	"github.com/kasuboski/mediaguess/pkg/index/sqlite/schema/gen/model"
	"github.com/kasuboski/mediaguess/pkg/logger"
	"github.com/sourcegraph/conc/pool"
)

// Scan walks the library and guesses facts for every media file found,
// fanning the work out over a bounded pool. Results come back in walk order
// no matter how the pool schedules them. When a store is configured the scan
// and its facts are persisted under the scan id.
func (m *Manager) Scan(ctx context.Context, opts ScanOptions) (*ScanResult, error) {
	scanID := uuid.New().String()
	log := logger.FromCtx(ctx, "scan", scanID)

	files, err := m.library.FindMediaFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan library: %w", err)
	}

	result := &ScanResult{
		ID:      scanID,
		Root:    opts.Root,
		Started: time.Now().UTC(),
		Files:   make([]FileResult, len(files)),
	}

	if m.store != nil {
		scan := model.Scan{
			ID:        result.ID,
			Root:      opts.Root,
			StartedAt: result.Started,
		}
		if err := m.store.CreateScan(ctx, scan); err != nil {
			return nil, fmt.Errorf("failed to record scan: %w", err)
		}
	}

	fileType := opts.FileType
	if fileType == "" {
		fileType = guess.Autodetect
	}

	nameFacts, hashFacts := splitFacts(opts.Facts)

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	log.Debugw("scanning library", "files", len(files), "concurrency", concurrency)

	p := pool.New().WithMaxGoroutines(concurrency)
	for i, file := range files {
		p.Go(func() {
			guesses := make([]*guess.Guess, 0, 2)
			if len(hashFacts) == 0 || len(nameFacts) > 0 {
				guesses = append(guesses, m.guesser.GuessFileInfo(ctx, file.Path, fileType, nameFacts))
			}
			if len(hashFacts) > 0 {
				guesses = append(guesses, m.guesser.GuessFileInfo(ctx, joinRoot(opts.Root, file.Path), fileType, hashFacts))
			}
			result.Files[i] = FileResult{File: file, Guess: guess.MergeAll(guesses)}
		})
	}
	p.Wait()

	result.Finished = time.Now().UTC()

	if m.store != nil {
		if err := m.store.AddFacts(ctx, scanFacts(result)); err != nil {
			log.Warnw("failed to record scan facts", "error", err)
		}
		if err := m.store.FinishScan(ctx, result.ID, result.Finished, int32(len(files))); err != nil {
			log.Warnw("failed to finish scan", "error", err)
		}
	}

	return result, nil
}

// splitFacts separates facts that only read the name from facts that must
// open the file. Hash facts get the on-disk path; everything else matches
// against the library-relative path.
func splitFacts(facts []string) (name, hash []string) {
	for _, f := range facts {
		if strings.HasPrefix(f, guess.FactHashPrefix) {
			hash = append(hash, f)
			continue
		}
		name = append(name, f)
	}
	return name, hash
}

func joinRoot(root, rel string) string {
	if root == "" {
		return rel
	}
	return filepath.Join(root, rel)
}

// scanFacts flattens a scan result into fact rows, files in walk order and
// properties in guess order.
func scanFacts(result *ScanResult) []model.Fact {
	facts := []model.Fact{}
	for _, fr := range result.Files {
		if fr.Guess == nil {
			continue
		}
		for _, key := range fr.Guess.Keys() {
			value, _ := fr.Guess.Value(key)
			facts = append(facts, model.Fact{
				ScanID:     result.ID,
				Path:       fr.File.Path,
				Property:   key,
				Value:      fmt.Sprint(value),
				Confidence: fr.Guess.Confidence(key),
			})
		}
	}
	return facts
}
