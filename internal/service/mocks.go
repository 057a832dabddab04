package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockMemberRepository struct {
	mock.Mock
}

// WithTx возвращает тот же мок: ожидания общие для транзакции и без нее
func (m *MockMemberRepository) WithTx(tx *sql.Tx) repository.MemberRepository {
	return m
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context, status *domain.MemberStatus) ([]*domain.Member, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListActive(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) SetStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MockMinistryRepository struct {
	mock.Mock
}

func (m *MockMinistryRepository) WithTx(tx *sql.Tx) repository.MinistryRepository {
	return m
}

func (m *MockMinistryRepository) Create(ctx context.Context, ministry *domain.Ministry) error {
	args := m.Called(ctx, ministry)
	return args.Error(0)
}

func (m *MockMinistryRepository) GetByID(ctx context.Context, id int64) (*domain.Ministry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ministry), args.Error(1)
}

func (m *MockMinistryRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ministry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ministry), args.Error(1)
}

func (m *MockMinistryRepository) List(ctx context.Context) ([]*domain.Ministry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ministry), args.Error(1)
}

type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) WithTx(tx *sql.Tx) repository.RosterRepository {
	return m
}

func (m *MockRosterRepository) Create(ctx context.Context, ministryID int64, date time.Time) (*domain.Roster, bool, error) {
	args := m.Called(ctx, ministryID, date)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Roster), args.Bool(1), args.Error(2)
}

func (m *MockRosterRepository) AttachAssignment(ctx context.Context, rosterID, memberID int64, role string) error {
	args := m.Called(ctx, rosterID, memberID, role)
	return args.Error(0)
}

func (m *MockRosterRepository) GetByID(ctx context.Context, id int64) (*domain.Roster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roster), args.Error(1)
}

func (m *MockRosterRepository) ListByMinistry(ctx context.Context, ministryID int64) ([]*domain.Roster, error) {
	args := m.Called(ctx, ministryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Roster), args.Error(1)
}

func (m *MockRosterRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetMemberServiceStats(ctx context.Context) ([]*domain.MemberServiceStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberServiceStat), args.Error(1)
}

func (m *MockStatsRepository) GetMinistryRosterStats(ctx context.Context) ([]*domain.MinistryRosterStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MinistryRosterStat), args.Error(1)
}
