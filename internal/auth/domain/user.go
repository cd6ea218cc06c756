package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential record in the auth store. The password is held only
// as a bcrypt hash; the plaintext never leaves the login handler.
type User struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
