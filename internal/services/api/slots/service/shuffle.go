package service

import (
	"context"

	"mealboard/internal/core/dates"
	"mealboard/internal/core/shuffle"
	perr "mealboard/internal/platform/errors"
	"mealboard/internal/platform/logger"
	"mealboard/internal/services/api/slots/domain"
)

// BatchUpdate applies meal changes slot by slot in request order
// the first failing row aborts the remainder, rows already written stay written
func (s *Svc) BatchUpdate(ctx context.Context, in domain.BatchInput) (domain.BatchOutput, error) {
	applied := 0
	for _, item := range in.Updates {
		if err := s.applyOne(ctx, item); err != nil {
			return domain.BatchOutput{Applied: applied},
				perr.Wrapf(err, perr.CodeOf(err), "batch update stopped at slot %s after %d applied", item.SlotID, applied)
		}
		applied++
	}
	return domain.BatchOutput{Applied: applied}, nil
}

func (s *Svc) applyOne(ctx context.Context, item domain.BatchItem) error {
	slot, err := s.Repo.GetByID(ctx, item.SlotID)
	if err != nil {
		return err
	}
	if err := s.guard(ctx, slot.HouseholdID); err != nil {
		return err
	}
	if item.MealID != nil {
		if err := s.requireMeal(ctx, *item.MealID, slot.HouseholdID); err != nil {
			return err
		}
	}
	return s.Repo.SetMeal(ctx, slot.ID, item.MealID, s.now().UTC())
}

// Shuffle fills the open active slots in the window with a random meal deal
// returns the full window after the fill plus how many meals repeated
func (s *Svc) Shuffle(ctx context.Context, in domain.ShuffleInput) (domain.ShuffleOutput, error) {
	start, end, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return domain.ShuffleOutput{}, err
	}
	if err := dates.Within(start, s.now()); err != nil {
		return domain.ShuffleOutput{}, err
	}
	if err := dates.Within(end, s.now()); err != nil {
		return domain.ShuffleOutput{}, err
	}
	if err := s.guard(ctx, in.HouseholdID); err != nil {
		return domain.ShuffleOutput{}, err
	}

	unlock := s.lockHousehold(in.HouseholdID)
	defer unlock()

	mealIDs, err := s.Repo.MealIDs(ctx, in.HouseholdID)
	if err != nil {
		return domain.ShuffleOutput{}, err
	}
	if len(mealIDs) == 0 {
		return domain.ShuffleOutput{}, perr.Validationf("no meals available")
	}

	window, err := s.Repo.ListRange(ctx, in.HouseholdID, start, end)
	if err != nil {
		return domain.ShuffleOutput{}, err
	}

	res := s.engine.Assign(mealIDs, toEngine(window))

	applied := 0
	now := s.now().UTC()
	for i := range window {
		if !window[i].Open() || res.Slots[i].MealID == nil {
			continue
		}
		if err := s.Repo.SetMeal(ctx, window[i].ID, res.Slots[i].MealID, now); err != nil {
			return domain.ShuffleOutput{},
				perr.Wrapf(err, perr.CodeOf(err), "shuffle stopped at slot %s after %d applied", window[i].ID, applied)
		}
		applied++
	}

	logger.C(ctx).Info().
		Str("household_id", in.HouseholdID).
		Int("applied", applied).
		Int("duplicates", res.DuplicateCount).
		Msg("shuffle complete")

	// re-read so the response carries joined meal names
	updated, err := s.Repo.ListRange(ctx, in.HouseholdID, start, end)
	if err != nil {
		return domain.ShuffleOutput{}, err
	}
	return domain.ShuffleOutput{UpdatedSlots: updated, DuplicateCount: res.DuplicateCount}, nil
}

// toEngine snapshots the window for the assignment engine
func toEngine(window []domain.Slot) []shuffle.Slot {
	out := make([]shuffle.Slot, len(window))
	for i, s := range window {
		out[i] = shuffle.Slot{ID: s.ID, IsActive: s.IsActive, MealID: s.MealID}
	}
	return out
}
