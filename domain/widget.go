package domain

import "time"

// Widget is one live calculator instance. It only exists while it is open.
type Widget struct {
	ID        string    `json:"id"`
	Locale    Locale    `json:"locale"`
	Inputs    RoiInputs `json:"inputs"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
