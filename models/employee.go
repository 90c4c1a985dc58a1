package models

import "time"

type Employee struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Status    bool      `json:"status"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
