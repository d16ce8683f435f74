package repository

import (
	"fmt"
	"sync"

	"roi-calculator/domain"
)

// WidgetRepositoryMemory keeps open widgets in process memory only.
type WidgetRepositoryMemory struct {
	mu   sync.Mutex
	data map[string]domain.Widget
}

// NewWidgetRepositoryMemory creates an empty in-memory widget repository.
func NewWidgetRepositoryMemory() *WidgetRepositoryMemory {
	return &WidgetRepositoryMemory{
		data: make(map[string]domain.Widget),
	}
}

func (r *WidgetRepositoryMemory) Create(w domain.Widget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[w.ID]; exists {
		return fmt.Errorf("%w: %s", ErrWidgetExists, w.ID)
	}
	r.data[w.ID] = w
	return nil
}

func (r *WidgetRepositoryMemory) Get(id string) (domain.Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.data[id]
	if !ok {
		return domain.Widget{}, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	return w, nil
}

func (r *WidgetRepositoryMemory) Update(
	id string,
	fn func(w *domain.Widget) error,
) (domain.Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.data[id]
	if !ok {
		return domain.Widget{}, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	if err := fn(&w); err != nil {
		return domain.Widget{}, err
	}
	r.data[id] = w
	return w, nil
}

func (r *WidgetRepositoryMemory) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	delete(r.data, id)
	return nil
}

func (r *WidgetRepositoryMemory) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
