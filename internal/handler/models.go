package handler

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DomainErrorResponse - бизнес-результат вместо списка ростеров
type DomainErrorResponse struct {
	Error string `json:"error"`
}

type CreateMemberRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive disciplinary"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive disciplinary"`
}

type MemberResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	CreatedAt *string `json:"created_at,omitempty"`
}

type MembersResponse struct {
	Members []MemberResponse `json:"members"`
}

type CreateMinistryRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	LeaderID *int64 `json:"leader_id" validate:"omitempty,gt=0"`
}

type MinistryResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Leader *MemberResponse `json:"leader,omitempty"`
	Roles  []string        `json:"roles"`
}

type MinistriesResponse struct {
	Ministries []MinistryResponse `json:"ministries"`
}

// GenerateRostersRequest: weeks не передан - значение по умолчанию,
// передан - должен быть положительным
type GenerateRostersRequest struct {
	Weeks *int `json:"weeks" validate:"omitempty,gt=0"`
}

type AssignmentResponse struct {
	MemberID   int64  `json:"member_id"`
	MemberName string `json:"member_name"`
	Role       string `json:"role"`
}

type RosterResponse struct {
	ID          int64                `json:"id"`
	MinistryID  int64                `json:"ministry_id"`
	Date        string               `json:"date"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type GenerateRostersResponse struct {
	BatchID string           `json:"batch_id"`
	Rosters []RosterResponse `json:"rosters"`
	Skipped []string         `json:"skipped_dates"`
}

type RostersResponse struct {
	Rosters []RosterResponse `json:"rosters"`
}

type MemberServiceStatResponse struct {
	MemberID        int64   `json:"member_id"`
	MemberName      string  `json:"member_name"`
	AssignmentCount int     `json:"assignment_count"`
	LastServedOn    *string `json:"last_served_on"`
}

type MinistryRosterStatResponse struct {
	MinistryID   int64  `json:"ministry_id"`
	MinistryName string `json:"ministry_name"`
	RosterCount  int    `json:"roster_count"`
}

type StatsResponse struct {
	MemberStats   []MemberServiceStatResponse  `json:"member_stats"`
	MinistryStats []MinistryRosterStatResponse `json:"ministry_stats"`
}
