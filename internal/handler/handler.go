package handler

import (
	"github.com/bagdasarian/church-roster/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	memberService   service.MemberService
	ministryService service.MinistryService
	rosterService   service.RosterService
	statsService    service.StatsService
	validate        *validator.Validate
	log             *zap.Logger
}

func NewHandler(
	memberService service.MemberService,
	ministryService service.MinistryService,
	rosterService service.RosterService,
	statsService service.StatsService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		memberService:   memberService,
		ministryService: ministryService,
		rosterService:   rosterService,
		statsService:    statsService,
		validate:        newValidator(),
		log:             log,
	}
}
