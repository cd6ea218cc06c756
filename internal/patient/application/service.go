package application

import (
	"time"

	"github.com/ramordeeple/patient-management/internal/patient/ports"
)

type Config struct {
	ServiceName string
}

type Service struct {
	cfg       Config
	patients  ports.PatientRepository
	billing   ports.BillingClient
	publisher ports.PatientEventPublisher
	nowFn     func() time.Time
}

type Dependencies struct {
	Config    Config
	Patients  ports.PatientRepository
	Billing   ports.BillingClient
	Publisher ports.PatientEventPublisher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.ServiceName == "" {
		cfg.ServiceName = "patient-service"
	}
	return &Service{
		cfg:       cfg,
		patients:  deps.Patients,
		billing:   deps.Billing,
		publisher: deps.Publisher,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}
