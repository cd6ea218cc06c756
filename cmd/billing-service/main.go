package main

import (
	"context"
	"log"

	"github.com/ramordeeple/patient-management/internal/billing/app/bootstrap"
)

func main() {
	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, "configs/billing-service.yaml")
	if err != nil {
		log.Fatalf("bootstrap billing runtime: %v", err)
	}
	if err := runtime.Run(ctx); err != nil {
		log.Fatalf("run billing service: %v", err)
	}
}
