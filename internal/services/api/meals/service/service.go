// Package service contains meal workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	pnet "mealboard/internal/platform/net"
	hdom "mealboard/internal/services/api/households/domain"
	"mealboard/internal/services/api/meals/domain"
	"mealboard/internal/services/api/meals/repo"
)

// Service is the public service port
type Service interface {
	List(ctx context.Context, householdID string) ([]domain.Meal, error)
	Create(ctx context.Context, in domain.CreateInput) (domain.Meal, error)
	Get(ctx context.Context, mealID string) (domain.Meal, error)
	Update(ctx context.Context, mealID string, in domain.UpdateInput) (domain.Meal, error)
	Delete(ctx context.Context, mealID string) error
}

// Svc implements the service port
type Svc struct {
	Repo       repo.Repo
	binder     repokit.Binder[repo.Repo]
	db         repokit.TxRunner
	membership hdom.MembershipPort
	now        func() time.Time
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], membership hdom.MembershipPort) *Svc {
	if db == nil {
		panic("meals.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("meals.Service requires a non nil Repo binder")
	}
	if membership == nil {
		panic("meals.Service requires a non nil MembershipPort (from households)")
	}
	return &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		membership: membership,
		now:        time.Now,
	}
}

func caller(ctx context.Context) (string, error) {
	uid := pnet.UserID(ctx)
	if uid == "" {
		return "", perr.Unauthorizedf("no authenticated user")
	}
	return uid, nil
}

// guard checks the caller belongs to householdID
func (s *Svc) guard(ctx context.Context, householdID string) error {
	uid, err := caller(ctx)
	if err != nil {
		return err
	}
	return s.membership.Require(ctx, householdID, uid)
}

// List returns the household's meal pool
func (s *Svc) List(ctx context.Context, householdID string) ([]domain.Meal, error) {
	if householdID == "" {
		return nil, perr.InvalidArgf("household_id is required")
	}
	if err := s.guard(ctx, householdID); err != nil {
		return nil, err
	}
	return s.Repo.ListByHousehold(ctx, householdID)
}

// Create adds a meal to the household
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Meal, error) {
	if err := s.guard(ctx, in.HouseholdID); err != nil {
		return domain.Meal{}, err
	}

	now := s.now().UTC()
	m := domain.Meal{
		ID:          uuid.NewString(),
		HouseholdID: in.HouseholdID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Insert(ctx, m); err != nil {
		return domain.Meal{}, err
	}
	return m, nil
}

// Get returns one meal from a household the caller belongs to
func (s *Svc) Get(ctx context.Context, mealID string) (domain.Meal, error) {
	m, err := s.Repo.GetByID(ctx, mealID)
	if err != nil {
		return domain.Meal{}, err
	}
	if err := s.guard(ctx, m.HouseholdID); err != nil {
		return domain.Meal{}, err
	}
	return m, nil
}

// Update rewrites name and description
func (s *Svc) Update(ctx context.Context, mealID string, in domain.UpdateInput) (domain.Meal, error) {
	m, err := s.Get(ctx, mealID)
	if err != nil {
		return domain.Meal{}, err
	}

	now := s.now().UTC()
	if err := s.Repo.Update(ctx, m.ID, in.Name, in.Description, now); err != nil {
		return domain.Meal{}, err
	}
	m.Name = in.Name
	m.Description = in.Description
	m.UpdatedAt = now
	return m, nil
}

// Delete removes a meal, open slots that referenced it become empty
func (s *Svc) Delete(ctx context.Context, mealID string) error {
	m, err := s.Repo.GetByID(ctx, mealID)
	if err != nil {
		return err
	}
	if err := s.guard(ctx, m.HouseholdID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, m.ID)
}
