package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	"github.com/rutasur/tour_backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordColumns = `record_id, kind, amount, currency_code, due_date, status, direction,
	category, description, booking_id, created_at, created_by, last_updated_at, last_updated_by`

// PgxRecordRepository implements financial record persistence using pgxpool.
type PgxRecordRepository struct {
	db *pgxpool.Pool
}

func newPgxRecordRepository(db *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{db: db}
}

var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

func scanRecord(row pgx.CollectableRow) (domain.FinancialRecord, error) {
	var record domain.FinancialRecord
	err := row.Scan(
		&record.RecordID, &record.Kind, &record.Amount, &record.CurrencyCode,
		&record.DueDate, &record.Status, &record.Direction,
		&record.Category, &record.Description, &record.BookingID,
		&record.CreatedAt, &record.CreatedBy, &record.LastUpdatedAt, &record.LastUpdatedBy,
	)
	return record, err
}

// SaveRecord inserts a new financial record.
func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	query := `
		INSERT INTO financial_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		record.RecordID, record.Kind, record.Amount, record.CurrencyCode,
		record.DueDate, record.Status, record.Direction,
		record.Category, record.Description, record.BookingID,
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting financial record: %w", err)
	}
	return nil
}

// UpdateRecord persists changes to an existing record.
func (r *PgxRecordRepository) UpdateRecord(ctx context.Context, record domain.FinancialRecord) error {
	query := `
		UPDATE financial_records SET
			amount = $2, currency_code = $3, due_date = $4, status = $5,
			direction = $6, category = $7, description = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE record_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		record.RecordID, record.Amount, record.CurrencyCode, record.DueDate, record.Status,
		record.Direction, record.Category, record.Description,
		record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating financial record %s: %w", record.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRecord removes a record.
func (r *PgxRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM financial_records WHERE record_id = $1`, recordID)
	if err != nil {
		return fmt.Errorf("error deleting financial record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRecordByID retrieves a single record.
func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records WHERE record_id = $1`
	rows, err := r.db.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("error querying financial record %s: %w", recordID, err)
	}
	record, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning financial record %s: %w", recordID, err)
	}
	return &record, nil
}

// ListRecords retrieves a page of records ordered by due date then creation
// time, using a keyset token for the page boundary.
func (r *PgxRecordRepository) ListRecords(ctx context.Context, filter portsrepo.RecordListFilter) (*portsrepo.RecordListResult, error) {
	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Kind != nil {
		conditions = append(conditions, "kind = "+arg(*filter.Kind))
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+arg(*filter.Status))
	}
	if filter.DueBefore != nil {
		conditions = append(conditions, "due_date < "+arg(*filter.DueBefore))
	}
	if filter.DueAfter != nil {
		conditions = append(conditions, "due_date >= "+arg(*filter.DueAfter))
	}
	if filter.NextToken != "" {
		dueDate, createdAt, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conditions = append(conditions, fmt.Sprintf("(due_date, created_at) > (%s, %s)", arg(dueDate), arg(createdAt)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT ` + recordColumns + ` FROM financial_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to know whether another page exists.
	query += " ORDER BY due_date ASC, created_at ASC LIMIT " + arg(limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying financial records: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("error scanning financial records: %w", err)
	}

	result := &portsrepo.RecordListResult{Records: records}
	if len(records) > limit {
		result.Records = records[:limit]
		last := result.Records[limit-1]
		result.NextToken = pagination.EncodeToken(last.DueDate, last.CreatedAt)
	}
	return result, nil
}
