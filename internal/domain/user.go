package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns one closet, one taste profile, and one feedback log.
type User struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	APIKeyHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
