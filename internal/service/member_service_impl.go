package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

// NewMemberService создает новый экземпляр MemberService
func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

// CreateMember регистрирует члена церкви, по умолчанию активного
func (s *memberService) CreateMember(ctx context.Context, name string, status domain.MemberStatus) (*domain.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("name is required")
	}
	if status == "" {
		status = domain.MemberActive
	}
	if !status.Valid() {
		return nil, domain.NewBadRequestError(fmt.Sprintf("unknown member status %q", status))
	}

	member := &domain.Member{Name: name, Status: status}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("member with id %d", id))
		}
		return nil, err
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, status *domain.MemberStatus) ([]*domain.Member, error) {
	if status != nil && !status.Valid() {
		return nil, domain.NewBadRequestError(fmt.Sprintf("unknown member status %q", *status))
	}
	return s.memberRepo.List(ctx, status)
}

// SetStatus меняет статус члена; неактивные перестают попадать в ростеры
func (s *memberService) SetStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error) {
	if !status.Valid() {
		return nil, domain.NewBadRequestError(fmt.Sprintf("unknown member status %q", status))
	}

	member, err := s.memberRepo.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("member with id %d", id))
		}
		return nil, err
	}

	return member, nil
}
