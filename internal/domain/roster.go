package domain

import "time"

type Roster struct {
	ID          int64
	MinistryID  int64
	Date        time.Time
	Assignments []RosterAssignment
	CreatedAt   time.Time
}

type RosterAssignment struct {
	RosterID   int64
	MemberID   int64
	MemberName string
	Role       string
}

// RosterBatch - результат одной генерации
type RosterBatch struct {
	// ID связывает ответ с записями в логах
	ID         string
	MinistryID int64
	Rosters    []*Roster
	// Skipped - даты, на которые ростер уже существовал
	Skipped []time.Time
}
