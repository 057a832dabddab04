package domain

import "time"

type Member struct {
	ID        int64
	Name      string
	Status    MemberStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type MemberStatus string

const (
	MemberActive       MemberStatus = "active"
	MemberInactive     MemberStatus = "inactive"
	MemberDisciplinary MemberStatus = "disciplinary"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberActive, MemberInactive, MemberDisciplinary:
		return true
	}
	return false
}

// IsActive - только активные члены могут попасть в ростер
func (m *Member) IsActive() bool {
	return m.Status == MemberActive
}
