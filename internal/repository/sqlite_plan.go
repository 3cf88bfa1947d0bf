package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/planpilothq/planpilot/internal/db"
	"github.com/planpilothq/planpilot/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. The plan is
// stored whole as a JSON document alongside denormalized summary columns.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Get(ctx context.Context, id string) (*domain.EventPlan, error) {
	query := `SELECT document FROM plans WHERE id = ?`
	var doc string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&doc)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying plan: %w", err)
	}

	var p domain.EventPlan
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		// A document that no longer decodes is unrecoverable through this
		// path. Report absence so callers can start fresh.
		return nil, ErrNotFound
	}
	return domain.Normalize(&p), nil
}

func (r *SQLitePlanRepo) Put(ctx context.Context, p *domain.EventPlan) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	// The conflict clause only applies the update when the incoming
	// version is at least the stored one, so stale writers lose.
	query := `INSERT INTO plans (id, title, status, version, last_updated, document)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			status = excluded.status,
			version = excluded.version,
			last_updated = excluded.last_updated,
			document = excluded.document
		WHERE excluded.version >= plans.version`
	res, err := r.db.ExecContext(ctx, query,
		p.PlanID,
		p.EventMetadata.Title,
		string(p.EventMetadata.Status),
		p.Version,
		p.LastUpdated.UTC().Format(time.RFC3339),
		string(doc),
	)
	if err != nil {
		return fmt.Errorf("storing plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storing plan: %w", err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM plans WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLitePlanRepo) ListSummaries(ctx context.Context) ([]PlanSummary, error) {
	query := `SELECT id, title, status, version, last_updated
		FROM plans ORDER BY last_updated DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var summaries []PlanSummary
	for rows.Next() {
		var s PlanSummary
		var statusStr, updatedStr string
		if err := rows.Scan(&s.ID, &s.Title, &statusStr, &s.Version, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		s.Status = domain.EventStatus(statusStr)
		// Rows with an unparseable timestamp are skipped rather than
		// failing the whole listing.
		ts, err := time.Parse(time.RFC3339, updatedStr)
		if err != nil {
			continue
		}
		s.LastUpdated = ts
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return summaries, nil
}
