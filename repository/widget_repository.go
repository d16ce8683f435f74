package repository

import (
	"errors"

	"roi-calculator/domain"
)

var (
	ErrWidgetNotFound = errors.New("widget not found")
	ErrWidgetExists   = errors.New("widget already exists")
)

type WidgetRepository interface {
	Create(w domain.Widget) error
	Get(id string) (domain.Widget, error)
	// Update runs fn on the stored widget while holding its lock. If fn
	// returns an error the widget is left unchanged.
	Update(id string, fn func(w *domain.Widget) error) (domain.Widget, error)
	Delete(id string) error
}
