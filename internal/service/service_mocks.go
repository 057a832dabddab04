package service

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) CreateMember(ctx context.Context, name string, status domain.MemberStatus) (*domain.Member, error) {
	args := m.Called(ctx, name, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) ListMembers(ctx context.Context, status *domain.MemberStatus) ([]*domain.Member, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberService) SetStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MockMinistryService struct {
	mock.Mock
}

func (m *MockMinistryService) CreateMinistry(ctx context.Context, name string, leaderID *int64) (*domain.Ministry, error) {
	args := m.Called(ctx, name, leaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ministry), args.Error(1)
}

func (m *MockMinistryService) GetMinistry(ctx context.Context, id int64) (*domain.Ministry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ministry), args.Error(1)
}

func (m *MockMinistryService) ListMinistries(ctx context.Context) ([]*domain.Ministry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ministry), args.Error(1)
}

func (m *MockMinistryService) RolesFor(ministry *domain.Ministry) []string {
	args := m.Called(ministry)
	return args.Get(0).([]string)
}

type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) GenerateRosters(ctx context.Context, ministryID int64, weeks int) (*domain.RosterBatch, error) {
	args := m.Called(ctx, ministryID, weeks)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RosterBatch), args.Error(1)
}

func (m *MockRosterService) ListRosters(ctx context.Context, ministryID int64) ([]*domain.Roster, error) {
	args := m.Called(ctx, ministryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Roster), args.Error(1)
}

func (m *MockRosterService) GetRoster(ctx context.Context, id int64) (*domain.Roster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roster), args.Error(1)
}

func (m *MockRosterService) DeleteRoster(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetMemberServiceStats(ctx context.Context) ([]*domain.MemberServiceStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberServiceStat), args.Error(1)
}

func (m *MockStatsService) GetMinistryRosterStats(ctx context.Context) ([]*domain.MinistryRosterStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MinistryRosterStat), args.Error(1)
}
