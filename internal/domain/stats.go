package domain

import "time"

type MemberServiceStat struct {
	MemberID        int64
	MemberName      string
	AssignmentCount int
	LastServedOn    *time.Time
}

type MinistryRosterStat struct {
	MinistryID   int64
	MinistryName string
	RosterCount  int
}
