package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/church-roster/internal/catalog"
	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
)

type ministryService struct {
	ministryRepo repository.MinistryRepository
	memberRepo   repository.MemberRepository
	roles        *catalog.Catalog
}

// NewMinistryService создает новый экземпляр MinistryService
func NewMinistryService(
	ministryRepo repository.MinistryRepository,
	memberRepo repository.MemberRepository,
	roles *catalog.Catalog,
) MinistryService {
	return &ministryService{
		ministryRepo: ministryRepo,
		memberRepo:   memberRepo,
		roles:        roles,
	}
}

// CreateMinistry создает министерство; лидер, если указан, должен существовать
func (s *ministryService) CreateMinistry(ctx context.Context, name string, leaderID *int64) (*domain.Ministry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("name is required")
	}

	ministry := &domain.Ministry{Name: name, LeaderID: leaderID}
	if leaderID != nil {
		leader, err := s.memberRepo.GetByID(ctx, *leaderID)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return nil, domain.NewNotFoundError(fmt.Sprintf("member with id %d", *leaderID))
			}
			return nil, err
		}
		ministry.Leader = leader
	}

	if err := s.ministryRepo.Create(ctx, ministry); err != nil {
		switch {
		case errors.Is(err, repository.ErrMinistryExists):
			return nil, domain.ErrMinistryExists
		case errors.Is(err, repository.ErrMemberNotFound) && leaderID != nil:
			// лидера удалили между проверкой и вставкой
			return nil, domain.NewNotFoundError(fmt.Sprintf("member with id %d", *leaderID))
		}
		return nil, err
	}

	return ministry, nil
}

func (s *ministryService) GetMinistry(ctx context.Context, id int64) (*domain.Ministry, error) {
	ministry, err := s.ministryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMinistryNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("ministry with id %d", id))
		}
		return nil, err
	}
	return ministry, nil
}

func (s *ministryService) ListMinistries(ctx context.Context) ([]*domain.Ministry, error) {
	return s.ministryRepo.List(ctx)
}

func (s *ministryService) RolesFor(ministry *domain.Ministry) []string {
	return s.roles.RolesFor(ministry.Name)
}
