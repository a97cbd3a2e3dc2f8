package index

import (
	"context"
	"errors"
	"time"

	"github.com/kasuboski/mediaguess/pkg/index/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in index")

// Store persists scans and the facts guessed for their files.
type Store interface {
	CreateScan(ctx context.Context, scan model.Scan) error
	FinishScan(ctx context.Context, id string, finished time.Time, files int32) error
	GetScan(ctx context.Context, id string) (*model.Scan, error)
	ListScans(ctx context.Context) ([]*model.Scan, error)
	AddFacts(ctx context.Context, facts []model.Fact) error
	ListFacts(ctx context.Context, scanID string, offset, limit int) ([]*model.Fact, error)
	CountFacts(ctx context.Context, scanID string) (int, error)
	Close() error
}
