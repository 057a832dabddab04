package service

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type MinistryService interface {
	CreateMinistry(ctx context.Context, name string, leaderID *int64) (*domain.Ministry, error)
	GetMinistry(ctx context.Context, id int64) (*domain.Ministry, error)
	ListMinistries(ctx context.Context) ([]*domain.Ministry, error)
	RolesFor(ministry *domain.Ministry) []string
}
