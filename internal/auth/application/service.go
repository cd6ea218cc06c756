package application

import (
	"time"

	"github.com/ramordeeple/patient-management/internal/auth/ports"
)

type Config struct {
	ServiceName      string
	LockoutThreshold int
	LockoutWindow    time.Duration
}

type Service struct {
	cfg      Config
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	signer   ports.TokenSigner
	lockouts ports.LockoutStore
	nowFn    func() time.Time
}

type Dependencies struct {
	Config   Config
	Users    ports.UserRepository
	Hasher   ports.PasswordHasher
	Signer   ports.TokenSigner
	Lockouts ports.LockoutStore
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "auth-service"
	}
	if cfg.LockoutThreshold <= 0 {
		cfg.LockoutThreshold = 10
	}
	if cfg.LockoutWindow <= 0 {
		cfg.LockoutWindow = 15 * time.Minute
	}
	return &Service{
		cfg:      cfg,
		users:    deps.Users,
		hasher:   deps.Hasher,
		signer:   deps.Signer,
		lockouts: deps.Lockouts,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
}
