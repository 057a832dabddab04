package service

import (
	"context"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type MemberService interface {
	CreateMember(ctx context.Context, name string, status domain.MemberStatus) (*domain.Member, error)
	GetMember(ctx context.Context, id int64) (*domain.Member, error)
	ListMembers(ctx context.Context, status *domain.MemberStatus) ([]*domain.Member, error)
	SetStatus(ctx context.Context, id int64, status domain.MemberStatus) (*domain.Member, error)
}
