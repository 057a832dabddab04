package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

type ministryRepository struct {
	executor DBExecutor
}

func NewMinistryRepository(db *sql.DB) *ministryRepository {
	return &ministryRepository{executor: db}
}

func NewMinistryRepositoryWithTx(tx *sql.Tx) *ministryRepository {
	return &ministryRepository{executor: tx}
}

func (r *ministryRepository) WithTx(tx *sql.Tx) repository.MinistryRepository {
	return NewMinistryRepositoryWithTx(tx)
}

func (r *ministryRepository) Create(ctx context.Context, ministry *domain.Ministry) error {
	query := `
		INSERT INTO ministries (name, leader_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	var leaderID sql.NullInt64
	if ministry.LeaderID != nil {
		leaderID = sql.NullInt64{Int64: *ministry.LeaderID, Valid: true}
	}

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, ministry.Name, leaderID, time.Now()).
		Scan(&ministry.ID, &ministry.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrMinistryExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return repository.ErrMemberNotFound
		}
		return err
	}

	ministry.UpdatedAt = nullTimePtr(updatedAt)
	return nil
}

const selectMinistry = `
	SELECT mi.id, mi.name, mi.leader_id, mi.created_at, mi.updated_at,
	       l.name, l.status
	FROM ministries mi
	LEFT JOIN members l ON l.id = mi.leader_id
`

func (r *ministryRepository) GetByID(ctx context.Context, id int64) (*domain.Ministry, error) {
	return r.get(ctx, selectMinistry+" WHERE mi.id = $1", id)
}

func (r *ministryRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ministry, error) {
	return r.get(ctx, selectMinistry+" WHERE mi.id = $1 FOR UPDATE OF mi", id)
}

func (r *ministryRepository) get(ctx context.Context, query string, id int64) (*domain.Ministry, error) {
	ministry, err := scanMinistry(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrMinistryNotFound
		}
		return nil, err
	}
	return ministry, nil
}

func (r *ministryRepository) List(ctx context.Context) ([]*domain.Ministry, error) {
	rows, err := r.executor.QueryContext(ctx, selectMinistry+" ORDER BY mi.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ministries := make([]*domain.Ministry, 0)
	for rows.Next() {
		ministry, err := scanMinistry(rows)
		if err != nil {
			return nil, err
		}
		ministries = append(ministries, ministry)
	}

	return ministries, rows.Err()
}

func scanMinistry(row rowScanner) (*domain.Ministry, error) {
	ministry := &domain.Ministry{}
	var leaderID sql.NullInt64
	var updatedAt sql.NullTime
	var leaderName, leaderStatus sql.NullString
	err := row.Scan(
		&ministry.ID,
		&ministry.Name,
		&leaderID,
		&ministry.CreatedAt,
		&updatedAt,
		&leaderName,
		&leaderStatus,
	)
	if err != nil {
		return nil, err
	}

	ministry.UpdatedAt = nullTimePtr(updatedAt)
	if leaderID.Valid {
		id := leaderID.Int64
		ministry.LeaderID = &id
		ministry.Leader = &domain.Member{
			ID:     id,
			Name:   leaderName.String,
			Status: domain.MemberStatus(leaderStatus.String),
		}
	}

	return ministry, nil
}
