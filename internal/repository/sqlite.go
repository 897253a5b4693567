package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lifelog/lifelog/internal/models"
)

//go:embed schema.sql
var schema string

// sqliteRepository is the alternate journal backend for deployments that
// outgrow the flat JSON document. It implements the same snapshot
// semantics: LoadSnapshot reads the whole journal in one transaction.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) a SQLite-backed journal at path.
func NewSQLiteRepository(path string) (JournalRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", ErrStorageUnavailable, err)
	}

	return &sqliteRepository{db: db}, nil
}

func (r *sqliteRepository) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%w: begin read: %v", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	snapshot := models.EmptySnapshot()

	rows, err := tx.QueryContext(ctx, "SELECT id, date, timestamp, entry, type FROM events ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("%w: query events: %v", ErrStorageUnavailable, err)
	}
	for rows.Next() {
		var (
			e       models.Event
			dateStr string
			tsStr   sql.NullString
		)
		if err := rows.Scan(&e.ID, &dateStr, &tsStr, &e.Entry, &e.Type); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: scan event: %v", ErrStorageUnavailable, err)
		}
		if t, perr := time.Parse("2006-01-02", dateStr); perr == nil {
			e.Date = models.DateOf(t)
		}
		if tsStr.Valid {
			if t, perr := time.Parse(time.RFC3339, tsStr.String); perr == nil {
				e.Timestamp = &models.Timestamp{Time: t}
			}
		}
		snapshot.Events = append(snapshot.Events, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read events: %v", ErrStorageUnavailable, err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT id, goal, status, created_date, completed_date, target_date, progress FROM goals ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: query goals: %v", ErrStorageUnavailable, err)
	}
	for rows.Next() {
		var (
			g                 models.Goal
			status            string
			created           string
			completed, target sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Text, &status, &created, &completed, &target, &g.Progress); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: scan goal: %v", ErrStorageUnavailable, err)
		}
		g.Status = models.GoalStatus(status)
		if t, perr := time.Parse("2006-01-02", created); perr == nil {
			g.CreatedDate = models.DateOf(t)
		}
		if completed.Valid {
			if t, perr := time.Parse("2006-01-02", completed.String); perr == nil {
				d := models.DateOf(t)
				g.CompletedDate = &d
			}
		}
		if target.Valid {
			if t, perr := time.Parse("2006-01-02", target.String); perr == nil {
				d := models.DateOf(t)
				g.TargetDate = &d
			}
		}
		snapshot.Goals = append(snapshot.Goals, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read goals: %v", ErrStorageUnavailable, err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT name, data, last_updated FROM patterns")
	if err != nil {
		return nil, fmt.Errorf("%w: query patterns: %v", ErrStorageUnavailable, err)
	}
	for rows.Next() {
		var name, dataStr, updatedStr string
		if err := rows.Scan(&name, &dataStr, &updatedStr); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: scan pattern: %v", ErrStorageUnavailable, err)
		}
		var p models.Pattern
		if err := json.Unmarshal([]byte(dataStr), &p.Data); err != nil {
			continue // advisory data, skip what we cannot decode
		}
		if t, perr := time.Parse(time.RFC3339, updatedStr); perr == nil {
			p.LastUpdated = t
		}
		snapshot.Patterns[name] = p
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read patterns: %v", ErrStorageUnavailable, err)
	}

	rows, err = tx.QueryContext(ctx, "SELECT message FROM warnings ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("%w: query warnings: %v", ErrStorageUnavailable, err)
	}
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: scan warning: %v", ErrStorageUnavailable, err)
		}
		snapshot.Warnings = append(snapshot.Warnings, msg)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read warnings: %v", ErrStorageUnavailable, err)
	}

	return snapshot, tx.Commit()
}

func (r *sqliteRepository) AppendEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	now := time.Now()
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Date.IsZero() {
		event.Date = models.DateOf(now)
	}
	if event.Timestamp == nil {
		event.Timestamp = &models.Timestamp{Time: now}
	}
	if event.Type == "" {
		event.Type = models.EventTypeGeneral
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO events (id, date, timestamp, entry, type) VALUES (?, ?, ?, ?, ?)",
		event.ID, event.Date.Format("2006-01-02"), event.Timestamp.Format(time.RFC3339), event.Entry, event.Type,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

func (r *sqliteRepository) AppendGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	goal.Status = models.GoalStatusActive
	goal.Progress = 0
	if goal.CreatedDate.IsZero() {
		goal.CreatedDate = models.DateOf(time.Now())
	}

	var target any
	if goal.TargetDate != nil && !goal.TargetDate.IsZero() {
		target = goal.TargetDate.Format("2006-01-02")
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO goals (id, goal, status, created_date, target_date, progress)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM goals), ?, ?, ?, ?, ?)
		 RETURNING id`,
		goal.Text, string(goal.Status), goal.CreatedDate.Format("2006-01-02"), target, goal.Progress,
	).Scan(&goal.ID)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	return goal, nil
}

func (r *sqliteRepository) CompleteGoal(ctx context.Context, id int) (*models.Goal, error) {
	completed := models.DateOf(time.Now())

	res, err := r.db.ExecContext(ctx,
		"UPDATE goals SET status = ?, completed_date = ?, progress = 100 WHERE id = ?",
		string(models.GoalStatusCompleted), completed.Format("2006-01-02"), id,
	)
	if err != nil {
		return nil, fmt.Errorf("complete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("complete goal: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrGoalNotFound, id)
	}

	var (
		g       models.Goal
		status  string
		created string
	)
	err = r.db.QueryRowContext(ctx,
		"SELECT id, goal, status, created_date, progress FROM goals WHERE id = ?", id,
	).Scan(&g.ID, &g.Text, &status, &created, &g.Progress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrGoalNotFound, id)
		}
		return nil, fmt.Errorf("complete goal: %w", err)
	}
	g.Status = models.GoalStatus(status)
	if t, perr := time.Parse("2006-01-02", created); perr == nil {
		g.CreatedDate = models.DateOf(t)
	}
	g.CompletedDate = &completed
	return &g, nil
}

func (r *sqliteRepository) WritePattern(ctx context.Context, name string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode pattern %q: %w", name, err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO patterns (name, data, last_updated) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, last_updated = excluded.last_updated`,
		name, string(encoded), time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write pattern %q: %w", name, err)
	}
	return nil
}

func (r *sqliteRepository) Stats(ctx context.Context) (*models.StoreStats, error) {
	stats := &models.StoreStats{}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM goals),
			(SELECT COUNT(*) FROM goals WHERE status = 'active'),
			(SELECT COUNT(*) FROM patterns),
			(SELECT COUNT(*) FROM warnings)`)
	if err := row.Scan(&stats.TotalEvents, &stats.TotalGoals, &stats.ActiveGoals, &stats.PatternsTracked, &stats.Warnings); err != nil {
		return nil, fmt.Errorf("%w: stats: %v", ErrStorageUnavailable, err)
	}

	return stats, nil
}

// Close closes the underlying database. The concrete type is needed since
// JournalRepository has no lifecycle methods.
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
