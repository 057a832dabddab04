package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService(t *testing.T) {
	mockStatsRepo := new(MockStatsRepository)
	service := NewStatsService(mockStatsRepo)

	mockStatsRepo.On("GetMemberServiceStats", mock.Anything).
		Return([]*domain.MemberServiceStat{{MemberID: 1, AssignmentCount: 3}}, nil)
	mockStatsRepo.On("GetMinistryRosterStats", mock.Anything).
		Return(nil, errors.New("timeout"))

	memberStats, err := service.GetMemberServiceStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, memberStats[0].AssignmentCount)

	_, err = service.GetMinistryRosterStats(context.Background())
	assert.Error(t, err)
}
