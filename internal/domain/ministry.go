package domain

import "time"

type Ministry struct {
	ID        int64
	Name      string
	LeaderID  *int64
	Leader    *Member
	CreatedAt time.Time
	UpdatedAt *time.Time
}
