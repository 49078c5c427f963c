// Package service contains slot workflows including batch updates and shuffle
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mealboard/internal/core/dates"
	"mealboard/internal/core/shuffle"
	"mealboard/internal/modkit/repokit"
	perr "mealboard/internal/platform/errors"
	pnet "mealboard/internal/platform/net"
	hdom "mealboard/internal/services/api/households/domain"
	"mealboard/internal/services/api/slots/domain"
	"mealboard/internal/services/api/slots/repo"
)

// Service is the public service port
type Service interface {
	List(ctx context.Context, householdID, startDate, endDate string) ([]domain.Slot, error)
	Create(ctx context.Context, in domain.CreateInput) (domain.Slot, error)
	Get(ctx context.Context, slotID string) (domain.Slot, error)
	Update(ctx context.Context, slotID string, in domain.UpdateInput) (domain.Slot, error)
	Delete(ctx context.Context, slotID string) error
	BatchUpdate(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error)
	Shuffle(ctx context.Context, in domain.ShuffleInput) (domain.ShuffleOutput, error)
}

// Svc implements the service port
type Svc struct {
	Repo       repo.Repo
	binder     repokit.Binder[repo.Repo]
	db         repokit.TxRunner
	membership hdom.MembershipPort
	engine     *shuffle.Engine
	now        func() time.Time

	// one mutex per household so concurrent shuffles serialize
	locks sync.Map
}

// Options control service behavior
type Options struct {
	// Engine is optional, a crypto/rand backed engine is used when nil
	Engine *shuffle.Engine
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], membership hdom.MembershipPort, opt Options) *Svc {
	if db == nil {
		panic("slots.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("slots.Service requires a non nil Repo binder")
	}
	if membership == nil {
		panic("slots.Service requires a non nil MembershipPort (from households)")
	}
	eng := opt.Engine
	if eng == nil {
		eng = shuffle.New()
	}
	return &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		membership: membership,
		engine:     eng,
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

func (s *Svc) guard(ctx context.Context, householdID string) error {
	uid, err := caller(ctx)
	if err != nil {
		return err
	}
	return s.membership.Require(ctx, householdID, uid)
}

// parseRange validates a start and end day pair
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := dates.ParseDay(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dates.ParseDay(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, perr.InvalidArgf("end_date %s is before start_date %s", endDate, startDate)
	}
	return start, end, nil
}

// List returns the household's slots for an inclusive date range
// no dates means the current week, a lone start date means start plus six days
func (s *Svc) List(ctx context.Context, householdID, startDate, endDate string) ([]domain.Slot, error) {
	if householdID == "" {
		return nil, perr.InvalidArgf("household_id is required")
	}

	var start, end time.Time
	switch {
	case startDate == "" && endDate == "":
		now := s.now()
		start, end = dates.WeekStart(now), dates.WeekEnd(now)
	case endDate == "":
		day, err := dates.ParseDay(startDate)
		if err != nil {
			return nil, err
		}
		start, end = day, day.AddDate(0, 0, 6)
	default:
		var err error
		start, end, err = parseRange(startDate, endDate)
		if err != nil {
			return nil, err
		}
	}

	if err := s.guard(ctx, householdID); err != nil {
		return nil, err
	}
	return s.Repo.ListRange(ctx, householdID, start, end)
}

// Get returns one slot if the caller belongs to its household
func (s *Svc) Get(ctx context.Context, slotID string) (domain.Slot, error) {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		return domain.Slot{}, err
	}
	if err := s.guard(ctx, slot.HouseholdID); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

// Create adds a slot, closed to one per household, date, and type
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Slot, error) {
	day, err := dates.ParseDay(in.Date)
	if err != nil {
		return domain.Slot{}, err
	}
	if err := dates.Within(day, s.now()); err != nil {
		return domain.Slot{}, err
	}
	if err := s.guard(ctx, in.HouseholdID); err != nil {
		return domain.Slot{}, err
	}
	if in.MealID != nil {
		if err := s.requireMeal(ctx, *in.MealID, in.HouseholdID); err != nil {
			return domain.Slot{}, err
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := s.now().UTC()
	slot := domain.Slot{
		ID:          uuid.NewString(),
		HouseholdID: in.HouseholdID,
		Date:        dates.FormatDay(day),
		SlotType:    domain.SlotType(in.SlotType),
		MealID:      in.MealID,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Insert(ctx, slot); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

// Update merges the fields present in the patch onto the stored slot
// absent fields keep their value, a null meal_id clears the meal
func (s *Svc) Update(ctx context.Context, slotID string, in domain.UpdateInput) (domain.Slot, error) {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		return domain.Slot{}, err
	}
	if err := s.guard(ctx, slot.HouseholdID); err != nil {
		return domain.Slot{}, err
	}

	if in.Date != nil {
		day, err := dates.ParseDay(*in.Date)
		if err != nil {
			return domain.Slot{}, err
		}
		if err := dates.Within(day, s.now()); err != nil {
			return domain.Slot{}, err
		}
		slot.Date = dates.FormatDay(day)
	}
	if in.SlotType != nil {
		slot.SlotType = domain.SlotType(*in.SlotType)
	}
	if in.MealID.Set {
		if in.MealID.Valid {
			if uuid.Validate(in.MealID.Value) != nil {
				return domain.Slot{}, perr.Validationf("meal_id must be a uuid")
			}
			if err := s.requireMeal(ctx, in.MealID.Value, slot.HouseholdID); err != nil {
				return domain.Slot{}, err
			}
			id := in.MealID.Value
			slot.MealID = &id
		} else {
			slot.MealID = nil
		}
		slot.MealName = nil
	}
	if in.IsActive != nil {
		slot.IsActive = *in.IsActive
	}

	slot.UpdatedAt = s.now().UTC()
	if err := s.Repo.Update(ctx, slot); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

// Delete removes a slot from the calendar
func (s *Svc) Delete(ctx context.Context, slotID string) error {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}
	if err := s.guard(ctx, slot.HouseholdID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, slot.ID)
}

// requireMeal rejects meals that live in another household
func (s *Svc) requireMeal(ctx context.Context, mealID, householdID string) error {
	ok, err := s.Repo.MealInHousehold(ctx, mealID, householdID)
	if err != nil {
		return err
	}
	if !ok {
		return perr.Validationf("meal %s does not belong to household %s", mealID, householdID)
	}
	return nil
}

// lockHousehold serializes shuffles per household while letting others run
func (s *Svc) lockHousehold(householdID string) func() {
	muAny, _ := s.locks.LoadOrStore(householdID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
