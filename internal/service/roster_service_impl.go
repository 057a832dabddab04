package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/church-roster/internal/catalog"
	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RosterSettings struct {
	MembersPerWeek int
	DefaultWeeks   int
	MaxWeeks       int
	Location       *time.Location
	// Now подменяется в тестах
	Now func() time.Time
}

func (s RosterSettings) withDefaults() RosterSettings {
	if s.MembersPerWeek <= 0 {
		s.MembersPerWeek = 3
	}
	if s.DefaultWeeks <= 0 {
		s.DefaultWeeks = 4
	}
	if s.MaxWeeks <= 0 {
		s.MaxWeeks = 52
	}
	if s.Location == nil {
		s.Location = time.UTC
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	return s
}

type rosterService struct {
	db           *sql.DB
	ministryRepo repository.MinistryRepository
	memberRepo   repository.MemberRepository
	rosterRepo   repository.RosterRepository
	roles        *catalog.Catalog
	picker       Picker
	settings     RosterSettings
	log          *zap.Logger
}

// NewRosterService создает новый экземпляр RosterService
func NewRosterService(
	db *sql.DB,
	ministryRepo repository.MinistryRepository,
	memberRepo repository.MemberRepository,
	rosterRepo repository.RosterRepository,
	roles *catalog.Catalog,
	picker Picker,
	settings RosterSettings,
	log *zap.Logger,
) RosterService {
	return &rosterService{
		db:           db,
		ministryRepo: ministryRepo,
		memberRepo:   memberRepo,
		rosterRepo:   rosterRepo,
		roles:        roles,
		picker:       picker,
		settings:     settings.withDefaults(),
		log:          log,
	}
}

// GenerateRosters создает ростеры на weeks воскресений вперед.
// Весь батч выполняется в одной транзакции: строка министерства блокируется,
// поэтому параллельные генерации для одного министерства идут по очереди.
// Даты, на которые ростер уже есть, пропускаются и попадают в Skipped.
func (s *rosterService) GenerateRosters(ctx context.Context, ministryID int64, weeks int) (*domain.RosterBatch, error) {
	weeks, err := s.normalizeWeeks(weeks)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, domain.NewPersistenceError("begin transaction", err)
	}
	defer tx.Rollback()

	ministryRepo := s.ministryRepo.WithTx(tx)
	memberRepo := s.memberRepo.WithTx(tx)
	rosterRepo := s.rosterRepo.WithTx(tx)

	ministry, err := ministryRepo.GetByIDForUpdate(ctx, ministryID)
	if err != nil {
		if errors.Is(err, repository.ErrMinistryNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("ministry with id %d", ministryID))
		}
		return nil, domain.NewPersistenceError("load ministry", err)
	}

	listed, err := memberRepo.ListActive(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("load active members", err)
	}
	members := activeOnly(listed)
	if len(members) == 0 {
		s.log.Info("roster generation skipped: empty member pool",
			zap.Int64("ministry_id", ministryID),
		)
		return nil, domain.ErrEmptyPool
	}

	roles := s.roles.RolesFor(ministry.Name)
	anchor := NextSunday(s.settings.Now().In(s.settings.Location))

	batch := &domain.RosterBatch{
		ID:         uuid.NewString(),
		MinistryID: ministryID,
		Rosters:    make([]*domain.Roster, 0, weeks),
		Skipped:    []time.Time{},
	}

	for _, date := range WeeklyDates(anchor, weeks) {
		roster, created, err := rosterRepo.Create(ctx, ministryID, date)
		if err != nil {
			return nil, domain.NewPersistenceError("create roster", err)
		}
		if !created {
			batch.Skipped = append(batch.Skipped, date)
			continue
		}

		for _, member := range SelectMembers(s.picker, members, s.settings.MembersPerWeek) {
			role := PickRole(s.picker, roles)
			if err := rosterRepo.AttachAssignment(ctx, roster.ID, member.ID, role); err != nil {
				return nil, domain.NewPersistenceError("attach assignment", err)
			}
			roster.Assignments = append(roster.Assignments, domain.RosterAssignment{
				RosterID:   roster.ID,
				MemberID:   member.ID,
				MemberName: member.Name,
				Role:       role,
			})
		}

		batch.Rosters = append(batch.Rosters, roster)
	}

	if err := tx.Commit(); err != nil {
		return nil, domain.NewPersistenceError("commit rosters", err)
	}

	s.log.Info("rosters generated",
		zap.String("batch_id", batch.ID),
		zap.Int64("ministry_id", ministryID),
		zap.String("ministry", ministry.Name),
		zap.Int("weeks", weeks),
		zap.Int("created", len(batch.Rosters)),
		zap.Int("skipped", len(batch.Skipped)),
		zap.Int("active_members", len(members)),
	)

	return batch, nil
}

func activeOnly(members []*domain.Member) []*domain.Member {
	active := make([]*domain.Member, 0, len(members))
	for _, m := range members {
		if m.IsActive() {
			active = append(active, m)
		}
	}
	return active
}

// normalizeWeeks: 0 означает "не указано"
func (s *rosterService) normalizeWeeks(weeks int) (int, error) {
	if weeks == 0 {
		return s.settings.DefaultWeeks, nil
	}
	if weeks < 0 || weeks > s.settings.MaxWeeks {
		return 0, domain.NewBadRequestError(fmt.Sprintf("weeks must be between 1 and %d", s.settings.MaxWeeks))
	}
	return weeks, nil
}

func (s *rosterService) ListRosters(ctx context.Context, ministryID int64) ([]*domain.Roster, error) {
	if _, err := s.ministryRepo.GetByID(ctx, ministryID); err != nil {
		if errors.Is(err, repository.ErrMinistryNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("ministry with id %d", ministryID))
		}
		return nil, err
	}

	return s.rosterRepo.ListByMinistry(ctx, ministryID)
}

func (s *rosterService) GetRoster(ctx context.Context, id int64) (*domain.Roster, error) {
	roster, err := s.rosterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRosterNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("roster with id %d", id))
		}
		return nil, err
	}
	return roster, nil
}

func (s *rosterService) DeleteRoster(ctx context.Context, id int64) error {
	if err := s.rosterRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRosterNotFound) {
			return domain.NewNotFoundError(fmt.Sprintf("roster with id %d", id))
		}
		return err
	}

	s.log.Info("roster deleted", zap.Int64("roster_id", id))
	return nil
}
