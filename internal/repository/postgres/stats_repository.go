package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/church-roster/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetMemberServiceStats(ctx context.Context) ([]*domain.MemberServiceStat, error) {
	query := `
		SELECT m.id, m.name, COUNT(ra.id) AS assignment_count, MAX(r.date) AS last_served_on
		FROM members m
		LEFT JOIN roster_assignments ra ON m.id = ra.member_id
		LEFT JOIN rosters r ON r.id = ra.roster_id
		GROUP BY m.id, m.name
		ORDER BY assignment_count DESC, m.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.MemberServiceStat, 0)
	for rows.Next() {
		stat := &domain.MemberServiceStat{}
		var lastServed sql.NullTime
		err := rows.Scan(&stat.MemberID, &stat.MemberName, &stat.AssignmentCount, &lastServed)
		if err != nil {
			return nil, err
		}
		stat.LastServedOn = nullTimePtr(lastServed)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetMinistryRosterStats(ctx context.Context) ([]*domain.MinistryRosterStat, error) {
	query := `
		SELECT mi.id, mi.name, COUNT(r.id) AS roster_count
		FROM ministries mi
		LEFT JOIN rosters r ON mi.id = r.ministry_id
		GROUP BY mi.id, mi.name
		ORDER BY mi.name
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.MinistryRosterStat, 0)
	for rows.Next() {
		stat := &domain.MinistryRosterStat{}
		if err := rows.Scan(&stat.MinistryID, &stat.MinistryName, &stat.RosterCount); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
