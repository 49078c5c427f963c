// Package repo provides the meals repository implementation
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	"mealboard/internal/services/api/meals/domain"
)

// Repo is the meals persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, m domain.Meal) error
	GetByID(ctx context.Context, id string) (domain.Meal, error)
	ListByHousehold(ctx context.Context, householdID string) ([]domain.Meal, error)
	Update(ctx context.Context, id, name, description string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type (
	// PG is a Postgres implementation of the meals repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, m domain.Meal) error {
	const sql = `
		INSERT INTO meals (id, household_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.q.Exec(ctx, sql, m.ID, m.HouseholdID, m.Name, m.Description, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return perr.FromPostgres(err, "insert meal")
	}
	return nil
}

func (r *queries) GetByID(ctx context.Context, id string) (domain.Meal, error) {
	const sql = `
		SELECT id, household_id, name, description, created_at, updated_at
		FROM meals
		WHERE id = $1
	`
	var m domain.Meal
	row := r.q.QueryRow(ctx, sql, id)
	if err := row.Scan(&m.ID, &m.HouseholdID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Meal{}, perr.NotFoundf("meal %s not found", id)
		}
		return domain.Meal{}, perr.FromPostgres(err, "get meal")
	}
	return m, nil
}

func (r *queries) ListByHousehold(ctx context.Context, householdID string) ([]domain.Meal, error) {
	const sql = `
		SELECT id, household_id, name, description, created_at, updated_at
		FROM meals
		WHERE household_id = $1
		ORDER BY name, id
	`
	rows, err := r.q.Query(ctx, sql, householdID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list meals")
	}
	defer rows.Close()

	var out []domain.Meal
	for rows.Next() {
		var m domain.Meal
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, perr.FromPostgres(err, "scan meal")
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "list meals")
	}
	return out, nil
}

func (r *queries) Update(ctx context.Context, id, name, description string, updatedAt time.Time) error {
	const sql = `
		UPDATE meals
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, sql, id, name, description, updatedAt)
	if err != nil {
		return perr.FromPostgres(err, "update meal")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("meal %s not found", id)
	}
	return nil
}

// Delete removes the meal, slots referencing it fall back to empty via ON DELETE SET NULL
func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "delete meal")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("meal %s not found", id)
	}
	return nil
}
