package handler

import "net/http"

func (h *Handler) GenerateRosters(w http.ResponseWriter, r *http.Request) {
	ministryID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req GenerateRostersRequest
	if err := h.decodeAndValidate(r, &req, true); err != nil {
		h.handleError(w, r, err)
		return
	}

	weeks := 0
	if req.Weeks != nil {
		weeks = *req.Weeks
	}

	batch, err := h.rosterService.GenerateRosters(r.Context(), ministryID, weeks)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, GenerateRostersResponse{
		BatchID: batch.ID,
		Rosters: domainRostersToHTTP(batch.Rosters),
		Skipped: datesToHTTP(batch.Skipped),
	})
}

func (h *Handler) ListRosters(w http.ResponseWriter, r *http.Request) {
	ministryID, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rosters, err := h.rosterService.ListRosters(r.Context(), ministryID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RostersResponse{Rosters: domainRostersToHTTP(rosters)})
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	roster, err := h.rosterService.GetRoster(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainRosterToHTTP(roster))
}

func (h *Handler) DeleteRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.rosterService.DeleteRoster(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
