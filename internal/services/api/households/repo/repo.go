// Package repo provides the households repository implementation
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	"mealboard/internal/services/api/households/domain"
)

// Repo is the households persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, h domain.Household) error
	InsertMember(ctx context.Context, m domain.Member) error

	GetByID(ctx context.Context, id string) (domain.Household, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error

	ListByUser(ctx context.Context, userID string) ([]domain.Household, error)
	ListMembers(ctx context.Context, householdID string) ([]domain.Member, error)

	IsMember(ctx context.Context, householdID, userID string) (bool, error)
	RoleOf(ctx context.Context, householdID, userID string) (domain.Role, error)
	Exists(ctx context.Context, householdID string) (bool, error)
}

type (
	// PG is a Postgres implementation of the households repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, h domain.Household) error {
	const sql = `
		INSERT INTO households (id, name, created_by, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.q.Exec(ctx, sql, h.ID, h.Name, h.CreatedBy, h.CreatedAt)
	if err != nil {
		return perr.FromPostgres(err, "insert household")
	}
	return nil
}

func (r *queries) InsertMember(ctx context.Context, m domain.Member) error {
	const sql = `
		INSERT INTO household_members (household_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.q.Exec(ctx, sql, m.HouseholdID, m.UserID, string(m.Role), m.JoinedAt)
	if err != nil {
		return perr.FromPostgres(err, "insert member")
	}
	return nil
}

func (r *queries) GetByID(ctx context.Context, id string) (domain.Household, error) {
	const sql = `
		SELECT id, name, created_by, created_at
		FROM households
		WHERE id = $1
	`
	var h domain.Household
	row := r.q.QueryRow(ctx, sql, id)
	if err := row.Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Household{}, perr.NotFoundf("household %s not found", id)
		}
		return domain.Household{}, perr.FromPostgres(err, "get household")
	}
	return h, nil
}

func (r *queries) UpdateName(ctx context.Context, id, name string) error {
	tag, err := r.q.Exec(ctx, `UPDATE households SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return perr.FromPostgres(err, "rename household")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("household %s not found", id)
	}
	return nil
}

// Delete removes the household, members, meals, and slots go with it via ON DELETE CASCADE
func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM households WHERE id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "delete household")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("household %s not found", id)
	}
	return nil
}

func (r *queries) ListByUser(ctx context.Context, userID string) ([]domain.Household, error) {
	const sql = `
		SELECT h.id, h.name, h.created_by, h.created_at
		FROM households h
		JOIN household_members m ON m.household_id = h.id
		WHERE m.user_id = $1
		ORDER BY h.created_at, h.id
	`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list households")
	}
	defer rows.Close()

	var out []domain.Household
	for rows.Next() {
		var h domain.Household
		if err := rows.Scan(&h.ID, &h.Name, &h.CreatedBy, &h.CreatedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan household")
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "list households")
	}
	return out, nil
}

func (r *queries) ListMembers(ctx context.Context, householdID string) ([]domain.Member, error) {
	const sql = `
		SELECT household_id, user_id, role, joined_at
		FROM household_members
		WHERE household_id = $1
		ORDER BY joined_at, user_id
	`
	rows, err := r.q.Query(ctx, sql, householdID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list members")
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var m domain.Member
		var role string
		if err := rows.Scan(&m.HouseholdID, &m.UserID, &role, &m.JoinedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan member")
		}
		m.Role = domain.Role(role)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "list members")
	}
	return out, nil
}

func (r *queries) IsMember(ctx context.Context, householdID, userID string) (bool, error) {
	const sql = `
		SELECT EXISTS (
			SELECT 1 FROM household_members
			WHERE household_id = $1 AND user_id = $2
		)
	`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, householdID, userID).Scan(&ok); err != nil {
		return false, perr.FromPostgres(err, "check membership")
	}
	return ok, nil
}

func (r *queries) RoleOf(ctx context.Context, householdID, userID string) (domain.Role, error) {
	const sql = `
		SELECT role FROM household_members
		WHERE household_id = $1 AND user_id = $2
	`
	var role string
	if err := r.q.QueryRow(ctx, sql, householdID, userID).Scan(&role); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return "", perr.NotFoundf("no membership for household %s", householdID)
		}
		return "", perr.FromPostgres(err, "get member role")
	}
	return domain.Role(role), nil
}

func (r *queries) Exists(ctx context.Context, householdID string) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM households WHERE id = $1)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, householdID).Scan(&ok); err != nil {
		return false, perr.FromPostgres(err, "check household")
	}
	return ok, nil
}
