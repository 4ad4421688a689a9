package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mdwlf90/ROC-SOLUTIONS/internal/domain/entities"
	"github.com/mdwlf90/ROC-SOLUTIONS/internal/infra/postgres"
)

// ErrEmptyRow is returned when a sink row arrives without the leading
// timestamp element.
var ErrEmptyRow = errors.New("empty application row")

// ApplicationRepository stores completed applications in Postgres. It
// implements the engine's record sink contract as an alternative to
// Google Sheets.
type ApplicationRepository struct {
	db postgres.DBTX
}

// NewApplicationRepository creates an ApplicationRepository backed by
// the given pool or transaction.
func NewApplicationRepository(db postgres.DBTX) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// AppendRow inserts one application row. The first element is the
// submission timestamp, the rest the answers in question order.
func (r *ApplicationRepository) AppendRow(ctx context.Context, row []string) error {
	if len(row) == 0 {
		return ErrEmptyRow
	}

	submittedAt, err := time.Parse("2006-01-02 15:04:05", row[0])
	if err != nil {
		return fmt.Errorf("parse submission timestamp: %w", err)
	}

	app := entities.Application{
		ID:          uuid.NewString(),
		SubmittedAt: submittedAt,
		Answers:     row[1:],
	}

	query := `
		INSERT INTO applications (id, submitted_at, answers)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, app.ID, app.SubmittedAt, app.Answers); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}
