package handler

import (
	"time"

	"github.com/bagdasarian/church-roster/internal/domain"
)

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	var createdAt *string
	if !member.CreatedAt.IsZero() {
		createdAtStr := member.CreatedAt.Format(time.RFC3339)
		createdAt = &createdAtStr
	}

	return MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Status:    string(member.Status),
		CreatedAt: createdAt,
	}
}

func domainMembersToHTTP(members []*domain.Member) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, domainMemberToHTTP(m))
	}
	return result
}

func domainMinistryToHTTP(ministry *domain.Ministry, roles []string) MinistryResponse {
	resp := MinistryResponse{
		ID:    ministry.ID,
		Name:  ministry.Name,
		Roles: roles,
	}
	if ministry.Leader != nil {
		leader := domainMemberToHTTP(ministry.Leader)
		resp.Leader = &leader
	}
	return resp
}

func domainRosterToHTTP(roster *domain.Roster) RosterResponse {
	assignments := make([]AssignmentResponse, 0, len(roster.Assignments))
	for _, a := range roster.Assignments {
		assignments = append(assignments, AssignmentResponse{
			MemberID:   a.MemberID,
			MemberName: a.MemberName,
			Role:       a.Role,
		})
	}

	return RosterResponse{
		ID:          roster.ID,
		MinistryID:  roster.MinistryID,
		Date:        roster.Date.Format(dateLayout),
		Assignments: assignments,
	}
}

func domainRostersToHTTP(rosters []*domain.Roster) []RosterResponse {
	result := make([]RosterResponse, 0, len(rosters))
	for _, r := range rosters {
		result = append(result, domainRosterToHTTP(r))
	}
	return result
}

func datesToHTTP(dates []time.Time) []string {
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.Format(dateLayout))
	}
	return result
}
