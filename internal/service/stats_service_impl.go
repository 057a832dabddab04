package service

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetMemberServiceStats(ctx context.Context) ([]*domain.MemberServiceStat, error) {
	return s.statsRepo.GetMemberServiceStats(ctx)
}

func (s *statsService) GetMinistryRosterStats(ctx context.Context) ([]*domain.MinistryRosterStat, error) {
	return s.statsRepo.GetMinistryRosterStats(ctx)
}
