package service

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type RosterService interface {
	GenerateRosters(ctx context.Context, ministryID int64, weeks int) (*domain.RosterBatch, error)
	ListRosters(ctx context.Context, ministryID int64) ([]*domain.Roster, error)
	GetRoster(ctx context.Context, id int64) (*domain.Roster, error)
	DeleteRoster(ctx context.Context, id int64) error
}
