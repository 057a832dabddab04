package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type RosterRepository interface {
	WithTx(tx *sql.Tx) RosterRepository
	// Create создает ростер на дату. Если на эту дату ростер уже есть,
	// возвращает nil, false, nil
	Create(ctx context.Context, ministryID int64, date time.Time) (*domain.Roster, bool, error)
	AttachAssignment(ctx context.Context, rosterID, memberID int64, role string) error
	GetByID(ctx context.Context, id int64) (*domain.Roster, error)
	ListByMinistry(ctx context.Context, ministryID int64) ([]*domain.Roster, error)
	Delete(ctx context.Context, id int64) error
}
