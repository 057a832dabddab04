package repository

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type MinistryRepository interface {
	WithTx(tx *sql.Tx) MinistryRepository
	Create(ctx context.Context, ministry *domain.Ministry) error
	GetByID(ctx context.Context, id int64) (*domain.Ministry, error)
	// GetByIDForUpdate блокирует строку министерства до конца транзакции
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ministry, error)
	List(ctx context.Context) ([]*domain.Ministry, error)
}
