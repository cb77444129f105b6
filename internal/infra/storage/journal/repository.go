package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/layananku/LSP-BookingGateway/internal/domain"
	"github.com/layananku/LSP-BookingGateway/pkg/psqlbuilder"
)

// Repository репозиторий журнала отправок бронирований
// Журнал append-only: одна запись на каждую попытку отправки в core backend
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает попытку отправки бронирования
func (r *Repository) Create(ctx context.Context, record *domain.SubmissionRecord) (*domain.SubmissionRecord, error) {
	query, args, err := psqlbuilder.Insert("submission_journal").
		Columns(
			"owner_user_id",
			"service_category",
			"provider_reference_id",
			"item_reference_id",
			"scheduled_date",
			"scheduled_time",
			"total_amount",
			"outcome",
			"upstream_booking_id",
			"error_text",
		).
		Values(
			record.OwnerUserID,
			int(record.ServiceCategory),
			record.ProviderReferenceID,
			record.ItemReferenceID,
			record.ScheduledDate,
			record.ScheduledTime,
			record.TotalAmount,
			record.Outcome,
			record.UpstreamBookingID,
			record.ErrorText,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// GetByOwner получает записи журнала пользователя, новые первыми
func (r *Repository) GetByOwner(ctx context.Context, ownerUserID int64, limit uint64) ([]*domain.SubmissionRecord, error) {
	builder := psqlbuilder.Select(
		"id",
		"owner_user_id",
		"service_category",
		"provider_reference_id",
		"item_reference_id",
		"scheduled_date",
		"scheduled_time",
		"total_amount",
		"outcome",
		"upstream_booking_id",
		"error_text",
		"created_at",
	).
		From("submission_journal").
		Where(squirrel.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.SubmissionRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - rows error: %v", ErrExecQuery, err)
	}

	return records, nil
}

func scanRecord(rows *sql.Rows) (*domain.SubmissionRecord, error) {
	var (
		record    domain.SubmissionRecord
		category  int
		createdAt sql.NullTime
	)

	err := rows.Scan(
		&record.ID,
		&record.OwnerUserID,
		&category,
		&record.ProviderReferenceID,
		&record.ItemReferenceID,
		&record.ScheduledDate,
		&record.ScheduledTime,
		&record.TotalAmount,
		&record.Outcome,
		&record.UpstreamBookingID,
		&record.ErrorText,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	record.ServiceCategory = domain.ServiceCategory(category)
	record.CreatedAt = createdAt.Time

	return &record, nil
}
