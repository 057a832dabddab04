package service

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type StatsService interface {
	GetMemberServiceStats(ctx context.Context) ([]*domain.MemberServiceStat, error)
	GetMinistryRosterStats(ctx context.Context) ([]*domain.MinistryRosterStat, error)
}
