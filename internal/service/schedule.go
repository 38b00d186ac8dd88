package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/metrics"
	"github.com/campuskitchen/lunch-service/internal/repository"
)

// ScheduleService defines the interface for the daily menu schedule.
type ScheduleService interface {
	// ScheduleItem places a catalog item on a date and immediately
	// re-resolves preorders for every student with a stored preference.
	// The returned slice holds the preorders created by this call.
	ScheduleItem(ctx context.Context, date string, item *model.MenuItem) ([]model.Order, error)
	// ScheduledItems returns the meals offered on the given date.
	ScheduledItems(ctx context.Context, date string) ([]model.MenuItem, error)
	// ListAll returns every schedule entry joined with its catalog item.
	ListAll(ctx context.Context) ([]model.ScheduledMeal, error)
}

// ScheduleServiceImpl implements ScheduleService.
type ScheduleServiceImpl struct {
	schedule    repository.ScheduleRepositoryInterface
	preferences repository.PreferencesRepositoryInterface
	orders      repository.OrdersRepositoryInterface
	resolver    MealResolver
	tx          repository.TxRunner
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(
	schedule repository.ScheduleRepositoryInterface,
	preferences repository.PreferencesRepositoryInterface,
	orders repository.OrdersRepositoryInterface,
	resolver MealResolver,
	tx repository.TxRunner,
) ScheduleService {
	return &ScheduleServiceImpl{
		schedule:    schedule,
		preferences: preferences,
		orders:      orders,
		resolver:    resolver,
		tx:          tx,
	}
}

// ScheduleItem appends a schedule entry for the date and runs the bulk
// preorder pass against the full offering. Repeat calls for the same item
// and date produce repeat entries and repeat preorders. The entry and its
// preorders commit together or not at all.
func (s *ScheduleServiceImpl) ScheduleItem(ctx context.Context, date string, item *model.MenuItem) ([]model.Order, error) {
	var created []model.Order

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.schedule.Insert(ctx, date, item.ID); err != nil {
			return err
		}

		offering, err := s.schedule.ItemsForDate(ctx, date)
		if err != nil {
			return err
		}

		prefs, err := s.preferences.All(ctx)
		if err != nil {
			return err
		}

		created = created[:0]
		for _, pref := range prefs {
			chosen, ok := s.resolver.Resolve(offering, pref.Rule)
			if !ok {
				continue
			}
			order := &model.Order{
				StudentID: pref.StudentID,
				MealName:  chosen.Name,
				Source:    model.SourcePreorder,
			}
			inserted, err := s.orders.Insert(ctx, order)
			if err != nil {
				return err
			}
			metrics.RecordResolverDecision(string(pref.Rule))
			created = append(created, *inserted)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPreorderRun(len(created))
	for range created {
		metrics.RecordOrder(string(model.SourcePreorder))
	}

	log.Info().
		Str("date", date).
		Str("meal", item.Name).
		Int("preorders", len(created)).
		Msg("Scheduled menu item")

	return created, nil
}

// ScheduledItems returns the meals offered on the given date, in the order
// they were scheduled.
func (s *ScheduleServiceImpl) ScheduledItems(ctx context.Context, date string) ([]model.MenuItem, error) {
	return s.schedule.ItemsForDate(ctx, date)
}

// ListAll returns the full schedule joined with catalog items.
func (s *ScheduleServiceImpl) ListAll(ctx context.Context) ([]model.ScheduledMeal, error) {
	return s.schedule.ListAll(ctx)
}

// Today returns the current date in schedule format.
func Today() string {
	return time.Now().Format(model.DateLayout)
}
