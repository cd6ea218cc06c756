package domain

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the primary record. Once persisted it is permanently visible to
// read paths; downstream provisioning and event emission never roll it back.
type Patient struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Address        string
	DateOfBirth    time.Time
	RegisteredDate time.Time
}
