package handler

import "net/http"

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	memberStats, err := h.statsService.GetMemberServiceStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	ministryStats, err := h.statsService.GetMinistryRosterStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := StatsResponse{
		MemberStats:   make([]MemberServiceStatResponse, len(memberStats)),
		MinistryStats: make([]MinistryRosterStatResponse, len(ministryStats)),
	}

	for i, stat := range memberStats {
		var lastServed *string
		if stat.LastServedOn != nil {
			s := stat.LastServedOn.Format(dateLayout)
			lastServed = &s
		}
		response.MemberStats[i] = MemberServiceStatResponse{
			MemberID:        stat.MemberID,
			MemberName:      stat.MemberName,
			AssignmentCount: stat.AssignmentCount,
			LastServedOn:    lastServed,
		}
	}

	for i, stat := range ministryStats {
		response.MinistryStats[i] = MinistryRosterStatResponse{
			MinistryID:   stat.MinistryID,
			MinistryName: stat.MinistryName,
			RosterCount:  stat.RosterCount,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
