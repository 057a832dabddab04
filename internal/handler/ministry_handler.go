package handler

import "net/http"

func (h *Handler) CreateMinistry(w http.ResponseWriter, r *http.Request) {
	var req CreateMinistryRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	ministry, err := h.ministryService.CreateMinistry(r.Context(), req.Name, req.LeaderID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMinistryToHTTP(ministry, h.ministryService.RolesFor(ministry)))
}

func (h *Handler) ListMinistries(w http.ResponseWriter, r *http.Request) {
	ministries, err := h.ministryService.ListMinistries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := MinistriesResponse{Ministries: make([]MinistryResponse, 0, len(ministries))}
	for _, m := range ministries {
		resp.Ministries = append(resp.Ministries, domainMinistryToHTTP(m, h.ministryService.RolesFor(m)))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetMinistry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ministry, err := h.ministryService.GetMinistry(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMinistryToHTTP(ministry, h.ministryService.RolesFor(ministry)))
}
