package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/church-roster/internal/domain"
	"github.com/bagdasarian/church-roster/internal/repository"
)

type rosterRepository struct {
	executor DBExecutor
}

func NewRosterRepository(db *sql.DB) *rosterRepository {
	return &rosterRepository{executor: db}
}

func NewRosterRepositoryWithTx(tx *sql.Tx) *rosterRepository {
	return &rosterRepository{executor: tx}
}

func (r *rosterRepository) WithTx(tx *sql.Tx) repository.RosterRepository {
	return NewRosterRepositoryWithTx(tx)
}

func (r *rosterRepository) Create(ctx context.Context, ministryID int64, date time.Time) (*domain.Roster, bool, error) {
	query := `
		INSERT INTO rosters (ministry_id, date, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (ministry_id, date) DO NOTHING
		RETURNING id, created_at
	`

	roster := &domain.Roster{
		MinistryID:  ministryID,
		Date:        date,
		Assignments: []domain.RosterAssignment{},
	}
	err := r.executor.QueryRowContext(ctx, query, ministryID, date, time.Now()).
		Scan(&roster.ID, &roster.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return roster, true, nil
}

func (r *rosterRepository) AttachAssignment(ctx context.Context, rosterID, memberID int64, role string) error {
	_, err := r.executor.ExecContext(
		ctx,
		"INSERT INTO roster_assignments (roster_id, member_id, role, created_at) VALUES ($1, $2, $3, $4)",
		rosterID,
		memberID,
		role,
		time.Now(),
	)
	return err
}

const selectRosterWithAssignments = `
	SELECT r.id, r.ministry_id, r.date, r.created_at,
	       ra.member_id, m.name, ra.role
	FROM rosters r
	LEFT JOIN roster_assignments ra ON ra.roster_id = r.id
	LEFT JOIN members m ON m.id = ra.member_id
`

func (r *rosterRepository) GetByID(ctx context.Context, id int64) (*domain.Roster, error) {
	rosters, err := r.query(ctx, selectRosterWithAssignments+" WHERE r.id = $1 ORDER BY ra.id", id)
	if err != nil {
		return nil, err
	}
	if len(rosters) == 0 {
		return nil, repository.ErrRosterNotFound
	}
	return rosters[0], nil
}

func (r *rosterRepository) ListByMinistry(ctx context.Context, ministryID int64) ([]*domain.Roster, error) {
	return r.query(ctx, selectRosterWithAssignments+" WHERE r.ministry_id = $1 ORDER BY r.date, r.id, ra.id", ministryID)
}

func (r *rosterRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM rosters WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrRosterNotFound
	}

	return nil
}

// query собирает ростеры из плоского результата JOIN, сохраняя порядок строк
func (r *rosterRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Roster, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rosters := make([]*domain.Roster, 0)
	byID := make(map[int64]*domain.Roster)
	for rows.Next() {
		var (
			rosterID   int64
			ministryID int64
			date       time.Time
			createdAt  time.Time
			memberID   sql.NullInt64
			memberName sql.NullString
			role       sql.NullString
		)
		if err := rows.Scan(&rosterID, &ministryID, &date, &createdAt, &memberID, &memberName, &role); err != nil {
			return nil, err
		}

		roster, ok := byID[rosterID]
		if !ok {
			roster = &domain.Roster{
				ID:          rosterID,
				MinistryID:  ministryID,
				Date:        date,
				CreatedAt:   createdAt,
				Assignments: []domain.RosterAssignment{},
			}
			byID[rosterID] = roster
			rosters = append(rosters, roster)
		}

		if memberID.Valid {
			roster.Assignments = append(roster.Assignments, domain.RosterAssignment{
				RosterID:   rosterID,
				MemberID:   memberID.Int64,
				MemberName: memberName.String,
				Role:       role.String,
			})
		}
	}

	return rosters, rows.Err()
}
