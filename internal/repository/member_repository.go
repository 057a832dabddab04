package repository

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type MemberRepository interface {
	WithTx(tx *sql.Tx) MemberRepository
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	List(ctx context.Context, status *domain.MemberStatus) ([]*domain.Member, error)
	ListActive(ctx context.Context) ([]*domain.Member, error)
	SetStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error)
}
