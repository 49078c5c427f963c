// Package service contains household workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	pnet "mealboard/internal/platform/net"
	"mealboard/internal/services/api/households/domain"
	"mealboard/internal/services/api/households/repo"
)

// Service is the public service port
type Service interface {
	ListMine(ctx context.Context) ([]domain.Household, error)
	Create(ctx context.Context, in domain.CreateInput) (domain.Household, error)
	Get(ctx context.Context, householdID string) (domain.Household, error)
	Rename(ctx context.Context, householdID string, in domain.RenameInput) (domain.Household, error)
	Delete(ctx context.Context, householdID string) error
	Join(ctx context.Context, in domain.JoinInput) (domain.Household, error)
	Members(ctx context.Context, householdID string) (domain.MembersOutput, error)

	domain.MembershipPort
}

// Svc implements the service port
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("households.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("households.Service requires a non nil Repo binder")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		now:    time.Now,
	}
}

// caller pulls the authenticated user id from the request context
func caller(ctx context.Context) (string, error) {
	uid := pnet.UserID(ctx)
	if uid == "" {
		return "", perr.Unauthorizedf("no authenticated user")
	}
	return uid, nil
}

// ListMine returns every household the caller belongs to
func (s *Svc) ListMine(ctx context.Context) ([]domain.Household, error) {
	uid, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByUser(ctx, uid)
}

// Create inserts the household and its owner membership in one transaction
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Household, error) {
	uid, err := caller(ctx)
	if err != nil {
		return domain.Household{}, err
	}

	now := s.now().UTC()
	h := domain.Household{
		ID:        uuid.NewString(),
		Name:      in.Name,
		CreatedBy: uid,
		CreatedAt: now,
	}

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.Insert(ctx, h); err != nil {
			return err
		}
		return r.InsertMember(ctx, domain.Member{
			HouseholdID: h.ID,
			UserID:      uid,
			Role:        domain.RoleOwner,
			JoinedAt:    now,
		})
	})
	if err != nil {
		return domain.Household{}, err
	}
	return h, nil
}

// Get returns one household the caller belongs to
func (s *Svc) Get(ctx context.Context, householdID string) (domain.Household, error) {
	uid, err := caller(ctx)
	if err != nil {
		return domain.Household{}, err
	}
	if err := s.Require(ctx, householdID, uid); err != nil {
		return domain.Household{}, err
	}
	return s.Repo.GetByID(ctx, householdID)
}

// requireOwner admits only the household owner
func (s *Svc) requireOwner(ctx context.Context, householdID string) error {
	uid, err := caller(ctx)
	if err != nil {
		return err
	}
	if err := s.Require(ctx, householdID, uid); err != nil {
		return err
	}
	role, err := s.Repo.RoleOf(ctx, householdID, uid)
	if err != nil {
		return err
	}
	if role != domain.RoleOwner {
		return perr.Forbiddenf("owner role required")
	}
	return nil
}

// Rename changes the household name, owner only
func (s *Svc) Rename(ctx context.Context, householdID string, in domain.RenameInput) (domain.Household, error) {
	if err := s.requireOwner(ctx, householdID); err != nil {
		return domain.Household{}, err
	}
	if err := s.Repo.UpdateName(ctx, householdID, in.Name); err != nil {
		return domain.Household{}, err
	}
	return s.Repo.GetByID(ctx, householdID)
}

// Delete removes the household, owner only
// memberships, meals, and slots cascade in the database
func (s *Svc) Delete(ctx context.Context, householdID string) error {
	if err := s.requireOwner(ctx, householdID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, householdID)
}

// Join adds the caller to the household behind the invite code
// the invite code is the household id, joining twice is a conflict
func (s *Svc) Join(ctx context.Context, in domain.JoinInput) (domain.Household, error) {
	uid, err := caller(ctx)
	if err != nil {
		return domain.Household{}, err
	}

	h, err := s.Repo.GetByID(ctx, in.InviteCode)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Household{}, perr.NotFoundf("invite code not recognized")
		}
		return domain.Household{}, err
	}

	already, err := s.Repo.IsMember(ctx, h.ID, uid)
	if err != nil {
		return domain.Household{}, err
	}
	if already {
		return domain.Household{}, perr.Conflictf("already a member of %s", h.Name)
	}

	err = s.Repo.InsertMember(ctx, domain.Member{
		HouseholdID: h.ID,
		UserID:      uid,
		Role:        domain.RoleMember,
		JoinedAt:    s.now().UTC(),
	})
	if err != nil {
		return domain.Household{}, err
	}
	return h, nil
}

// Members lists the members of a household the caller belongs to
func (s *Svc) Members(ctx context.Context, householdID string) (domain.MembersOutput, error) {
	uid, err := caller(ctx)
	if err != nil {
		return domain.MembersOutput{}, err
	}
	if err := s.Require(ctx, householdID, uid); err != nil {
		return domain.MembersOutput{}, err
	}
	ms, err := s.Repo.ListMembers(ctx, householdID)
	if err != nil {
		return domain.MembersOutput{}, err
	}
	return domain.MembersOutput{HouseholdID: householdID, Members: ms}, nil
}

// Require implements domain.MembershipPort
func (s *Svc) Require(ctx context.Context, householdID, userID string) error {
	ok, err := s.Repo.IsMember(ctx, householdID, userID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	exists, err := s.Repo.Exists(ctx, householdID)
	if err != nil {
		return err
	}
	if !exists {
		return perr.NotFoundf("household %s not found", householdID)
	}
	return perr.Forbiddenf("not a member of household %s", householdID)
}
