package repository

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type StatsRepository interface {
	GetMemberServiceStats(ctx context.Context) ([]*domain.MemberServiceStat, error)
	GetMinistryRosterStats(ctx context.Context) ([]*domain.MinistryRosterStat, error)
}
