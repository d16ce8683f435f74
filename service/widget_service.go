package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"roi-calculator/domain"
	"roi-calculator/repository"
)

type WidgetService struct {
	repo   repository.WidgetRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewWidgetService(repo repository.WidgetRepository, logger zerolog.Logger) *WidgetService {
	return &WidgetService{
		repo:   repo,
		logger: logger.With().Str("component", "widget_service").Logger(),
		now:    time.Now,
	}
}

// Create opens a calculator seeded with the default inputs.
func (s *WidgetService) Create(locale domain.Locale) (domain.Widget, error) {
	now := s.now().UTC()
	w := domain.Widget{
		ID:        uuid.NewString(),
		Locale:    locale,
		Inputs:    domain.DefaultInputs(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(w); err != nil {
		return domain.Widget{}, fmt.Errorf("create widget: %w", err)
	}

	s.logger.Info().Str("widget_id", w.ID).Str("locale", string(locale)).Msg("widget created")
	return w, nil
}

func (s *WidgetService) Get(id string) (domain.Widget, domain.RoiResult, error) {
	w, err := s.repo.Get(id)
	if err != nil {
		return domain.Widget{}, domain.RoiResult{}, err
	}
	return w, Compute(w.Inputs), nil
}

// SetField applies one raw text edit to a widget and returns the
// recomputed result. Unparseable text sets the field to 0.
func (s *WidgetService) SetField(
	id string,
	field domain.Field,
	raw string,
) (domain.Widget, domain.RoiResult, error) {

	var result domain.RoiResult

	w, err := s.repo.Update(id, func(w *domain.Widget) error {
		engine := NewEngine(w.Inputs)
		unsubscribe := engine.Subscribe(func(r domain.RoiResult) {
			result = r
		})
		defer unsubscribe()

		engine.SetField(field, raw)

		w.Inputs = engine.Inputs()
		w.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return domain.Widget{}, domain.RoiResult{}, err
	}

	s.logger.Debug().
		Str("widget_id", id).
		Str("field", string(field)).
		Float64("annual_return_percent", result.AnnualReturnPercent).
		Msg("widget field updated")

	return w, result, nil
}

// Delete tears a widget down; its inputs are discarded.
func (s *WidgetService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info().Str("widget_id", id).Msg("widget deleted")
	return nil
}
