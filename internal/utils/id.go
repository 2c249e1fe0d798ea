package utils

import (
	"github.com/google/uuid"
)

// NewRandomID returns a new unique ID.
func NewRandomID() string {
	return uuid.New().String()
}
