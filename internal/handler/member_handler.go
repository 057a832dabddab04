package handler

import (
	"net/http"

	"github.com/bagdasarian/church-roster/internal/domain"
)

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), req.Name, domain.MemberStatus(req.Status))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	var status *domain.MemberStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.MemberStatus(raw)
		status = &s
	}

	members, err := h.memberService.ListMembers(r.Context(), status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MembersResponse{Members: domainMembersToHTTP(members)})
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

func (h *Handler) SetMemberStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req SetStatusRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.SetStatus(r.Context(), id, domain.MemberStatus(req.Status))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}
