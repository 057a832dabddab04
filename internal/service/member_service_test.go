package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberService_CreateMember(t *testing.T) {
	t.Run("статус по умолчанию - active", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		service := NewMemberService(mockMemberRepo)

		mockMemberRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
			return m.Name == "Ana" && m.Status == domain.MemberActive
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).ID = 1
		}).Return(nil).Once()

		member, err := service.CreateMember(context.Background(), "  Ana ", "")

		require.NoError(t, err)
		assert.Equal(t, int64(1), member.ID)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		service := NewMemberService(new(MockMemberRepository))

		_, err := service.CreateMember(context.Background(), "   ", domain.MemberActive)

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("ошибка: неизвестный статус", func(t *testing.T) {
		service := NewMemberService(new(MockMemberRepository))

		_, err := service.CreateMember(context.Background(), "Ana", "retired")

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})
}

func TestMemberService_GetMember(t *testing.T) {
	mockMemberRepo := new(MockMemberRepository)
	service := NewMemberService(mockMemberRepo)

	mockMemberRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Member{ID: 1, Name: "Ana"}, nil)
	mockMemberRepo.On("GetByID", mock.Anything, int64(2)).Return(nil, repository.ErrMemberNotFound)

	member, err := service.GetMember(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", member.Name)

	_, err = service.GetMember(context.Background(), 2)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMemberService_ListMembers(t *testing.T) {
	t.Run("с фильтром по статусу", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		service := NewMemberService(mockMemberRepo)
		status := domain.MemberInactive

		mockMemberRepo.On("List", mock.Anything, &status).Return([]*domain.Member{{ID: 2, Status: status}}, nil)

		members, err := service.ListMembers(context.Background(), &status)

		require.NoError(t, err)
		assert.Len(t, members, 1)
	})

	t.Run("ошибка: неизвестный статус", func(t *testing.T) {
		service := NewMemberService(new(MockMemberRepository))
		status := domain.MemberStatus("ghost")

		_, err := service.ListMembers(context.Background(), &status)

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})
}

func TestMemberService_SetStatus(t *testing.T) {
	t.Run("успешно", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		service := NewMemberService(mockMemberRepo)

		mockMemberRepo.On("SetStatus", mock.Anything, int64(1), domain.MemberDisciplinary).
			Return(&domain.Member{ID: 1, Status: domain.MemberDisciplinary}, nil)

		member, err := service.SetStatus(context.Background(), 1, domain.MemberDisciplinary)

		require.NoError(t, err)
		assert.False(t, member.IsActive())
	})

	t.Run("ошибка: член не найден", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		service := NewMemberService(mockMemberRepo)

		mockMemberRepo.On("SetStatus", mock.Anything, int64(5), domain.MemberActive).Return(nil, repository.ErrMemberNotFound)

		_, err := service.SetStatus(context.Background(), 5, domain.MemberActive)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: неизвестный статус", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepository)
		service := NewMemberService(mockMemberRepo)

		_, err := service.SetStatus(context.Background(), 5, "paused")

		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		mockMemberRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
