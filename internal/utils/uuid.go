package utils

import "github.com/google/uuid"

// NewRunID returns a time-ordered identifier for one memfill run. It falls
// back to a random UUID if the v7 generator fails.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
