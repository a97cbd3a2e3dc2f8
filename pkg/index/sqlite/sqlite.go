package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/mediaguess/pkg/index"
	"github.com/kasuboski/mediaguess/pkg/index/sqlite/schema/gen/model"
	"github.com/kasuboski/mediaguess/pkg/index/sqlite/schema/gen/table"
	"github.com/kasuboski/mediaguess/pkg/logger"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// New opens the index database at the given path and applies any pending
// migrations. The file is created if it doesn't exist.
func New(ctx context.Context, filePath string) (index.Store, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// CreateScan stores a new scan
func (s *SQLite) CreateScan(ctx context.Context, scan model.Scan) error {
	stmt := table.Scan.INSERT(table.Scan.AllColumns).MODEL(scan)
	_, err := s.handleInsert(ctx, stmt)
	return err
}

// FinishScan marks a scan finished and records how many files it covered
func (s *SQLite) FinishScan(ctx context.Context, id string, finished time.Time, files int32) error {
	scan := model.Scan{
		FinishedAt: &finished,
		Files:      files,
	}
	stmt := table.Scan.UPDATE(table.Scan.FinishedAt, table.Scan.Files).MODEL(scan).WHERE(table.Scan.ID.EQ(sqlite.String(id)))
	_, err := stmt.ExecContext(ctx, s.db)
	return err
}

// GetScan fetches a scan by its id
func (s *SQLite) GetScan(ctx context.Context, id string) (*model.Scan, error) {
	stmt := table.Scan.
		SELECT(table.Scan.AllColumns).
		FROM(table.Scan).
		WHERE(table.Scan.ID.EQ(sqlite.String(id)))

	var scan model.Scan
	err := stmt.QueryContext(ctx, s.db, &scan)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, index.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	return &scan, nil
}

// ListScans lists stored scans, most recent first
func (s *SQLite) ListScans(ctx context.Context) ([]*model.Scan, error) {
	scans := make([]*model.Scan, 0)

	stmt := table.Scan.
		SELECT(table.Scan.AllColumns).
		FROM(table.Scan).
		ORDER_BY(table.Scan.StartedAt.DESC())

	err := stmt.QueryContext(ctx, s.db, &scans)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}

	return scans, nil
}

// AddFacts stores guessed facts in one batch
func (s *SQLite) AddFacts(ctx context.Context, facts []model.Fact) error {
	if len(facts) == 0 {
		return nil
	}

	stmt := table.Fact.INSERT(table.Fact.AllColumns.Except(table.Fact.ID)).MODELS(facts)
	_, err := s.handleInsert(ctx, stmt)
	return err
}

// ListFacts lists the facts recorded for a scan in insertion order. A limit
// of zero returns everything.
func (s *SQLite) ListFacts(ctx context.Context, scanID string, offset, limit int) ([]*model.Fact, error) {
	facts := make([]*model.Fact, 0)

	stmt := table.Fact.
		SELECT(table.Fact.AllColumns).
		FROM(table.Fact).
		WHERE(table.Fact.ScanID.EQ(sqlite.String(scanID))).
		ORDER_BY(table.Fact.ID.ASC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	err := stmt.QueryContext(ctx, s.db, &facts)
	if err != nil {
		return nil, fmt.Errorf("failed to list facts: %w", err)
	}

	return facts, nil
}

// CountFacts returns how many facts a scan recorded.
func (s *SQLite) CountFacts(ctx context.Context, scanID string) (int, error) {
	// raw SQL since jet does not play well with aggregates into plain values
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM fact WHERE scan_id = ?`, scanID)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count facts: %w", err)
	}

	return count, nil
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debugw("failed to execute statement", "query", stmt.DebugSql(), "error", err)
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
