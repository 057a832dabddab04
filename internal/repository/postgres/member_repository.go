package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func (r *memberRepository) WithTx(tx *sql.Tx) repository.MemberRepository {
	return NewMemberRepositoryWithTx(tx)
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (name, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		member.Name,
		string(member.Status),
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}

	member.UpdatedAt = nullTimePtr(updatedAt)
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `
		SELECT id, name, status, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrMemberNotFound
		}
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) List(ctx context.Context, status *domain.MemberStatus) ([]*domain.Member, error) {
	query := `
		SELECT id, name, status, created_at, updated_at
		FROM members
		ORDER BY id
	`
	args := []any{}
	if status != nil {
		query = `
			SELECT id, name, status, created_at, updated_at
			FROM members
			WHERE status = $1
			ORDER BY id
		`
		args = append(args, string(*status))
	}

	return r.query(ctx, query, args...)
}

func (r *memberRepository) ListActive(ctx context.Context) ([]*domain.Member, error) {
	status := domain.MemberActive
	return r.List(ctx, &status)
}

func (r *memberRepository) SetStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error) {
	query := `
		UPDATE members
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, name, status, created_at, updated_at
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, id, string(status), time.Now()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrMemberNotFound
		}
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Member, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	member := &domain.Member{}
	var status string
	var updatedAt sql.NullTime
	if err := row.Scan(&member.ID, &member.Name, &status, &member.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	member.Status = domain.MemberStatus(status)
	member.UpdatedAt = nullTimePtr(updatedAt)
	return member, nil
}
