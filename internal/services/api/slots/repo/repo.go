// Package repo provides the slots repository implementation
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"mealboard/internal/core/dates"
	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	"mealboard/internal/services/api/slots/domain"
)

// Repo is the slots persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, s domain.Slot) error
	GetByID(ctx context.Context, id string) (domain.Slot, error)
	ListRange(ctx context.Context, householdID string, start, end time.Time) ([]domain.Slot, error)
	SetMeal(ctx context.Context, id string, mealID *string, updatedAt time.Time) error
	Update(ctx context.Context, s domain.Slot) error
	Delete(ctx context.Context, id string) error

	MealIDs(ctx context.Context, householdID string) ([]string, error)
	MealInHousehold(ctx context.Context, mealID, householdID string) (bool, error)
}

type (
	// PG is a Postgres implementation of the slots repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, s domain.Slot) error {
	const sql = `
		INSERT INTO slots (id, household_id, date, slot_type, meal_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)
	`
	_, err := r.q.Exec(ctx, sql,
		s.ID, s.HouseholdID, s.Date, string(s.SlotType), s.MealID, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("slot for %s %s already exists", s.Date, s.SlotType)
		}
		return perr.FromPostgres(err, "insert slot")
	}
	return nil
}

func (r *queries) GetByID(ctx context.Context, id string) (domain.Slot, error) {
	const sql = `
		SELECT s.id, s.household_id, s.date, s.slot_type, s.meal_id, s.is_active, s.created_at, s.updated_at
		FROM slots s
		WHERE s.id = $1
	`
	row := r.q.QueryRow(ctx, sql, id)
	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Slot{}, perr.NotFoundf("slot %s not found", id)
		}
		return domain.Slot{}, perr.FromPostgres(err, "get slot")
	}
	return s, nil
}

// ListRange returns the household window ordered by date then lunch before dinner
func (r *queries) ListRange(ctx context.Context, householdID string, start, end time.Time) ([]domain.Slot, error) {
	const sql = `
		SELECT s.id, s.household_id, s.date, s.slot_type, s.meal_id, s.is_active, s.created_at, s.updated_at,
		       m.name
		FROM slots s
		LEFT JOIN meals m ON m.id = s.meal_id
		WHERE s.household_id = $1 AND s.date BETWEEN $2::date AND $3::date
		ORDER BY s.date, CASE s.slot_type WHEN 'lunch' THEN 0 ELSE 1 END, s.id
	`
	rows, err := r.q.Query(ctx, sql, householdID, dates.FormatDay(start), dates.FormatDay(end))
	if err != nil {
		return nil, perr.FromPostgres(err, "list slots")
	}
	defer rows.Close()

	var out []domain.Slot
	for rows.Next() {
		var s domain.Slot
		var day time.Time
		var slotType string
		if err := rows.Scan(
			&s.ID, &s.HouseholdID, &day, &slotType, &s.MealID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.MealName,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan slot")
		}
		s.Date = dates.FormatDay(day)
		s.SlotType = domain.SlotType(slotType)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "list slots")
	}
	return out, nil
}

// SetMeal writes only the meal column, used by batch updates and shuffle
func (r *queries) SetMeal(ctx context.Context, id string, mealID *string, updatedAt time.Time) error {
	const sql = `
		UPDATE slots
		SET meal_id = $2, updated_at = $3
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, sql, id, mealID, updatedAt)
	if err != nil {
		return perr.FromPostgres(err, "set slot meal")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("slot %s not found", id)
	}
	return nil
}

// Update rewrites every mutable column, the service merges the patch first
func (r *queries) Update(ctx context.Context, s domain.Slot) error {
	const sql = `
		UPDATE slots
		SET date = $2::date, slot_type = $3, meal_id = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, sql, s.ID, s.Date, string(s.SlotType), s.MealID, s.IsActive, s.UpdatedAt)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("slot for %s %s already exists", s.Date, s.SlotType)
		}
		return perr.FromPostgres(err, "update slot")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("slot %s not found", s.ID)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return perr.FromPostgres(err, "delete slot")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("slot %s not found", id)
	}
	return nil
}

// MealIDs returns the household's meal pool in stable order
func (r *queries) MealIDs(ctx context.Context, householdID string) ([]string, error) {
	const sql = `SELECT id FROM meals WHERE household_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, sql, householdID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list meal ids")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, perr.FromPostgres(err, "scan meal id")
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPostgres(err, "list meal ids")
	}
	return out, nil
}

func (r *queries) MealInHousehold(ctx context.Context, mealID, householdID string) (bool, error) {
	const sql = `SELECT EXISTS (SELECT 1 FROM meals WHERE id = $1 AND household_id = $2)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, mealID, householdID).Scan(&ok); err != nil {
		return false, perr.FromPostgres(err, "check meal household")
	}
	return ok, nil
}

// scanSlot reads the base slot columns without the meal name join
func scanSlot(row repokit.Row) (domain.Slot, error) {
	var s domain.Slot
	var day time.Time
	var slotType string
	if err := row.Scan(
		&s.ID, &s.HouseholdID, &day, &slotType, &s.MealID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return domain.Slot{}, err
	}
	s.Date = dates.FormatDay(day)
	s.SlotType = domain.SlotType(slotType)
	return s, nil
}
