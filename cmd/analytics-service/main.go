package main

import (
	"context"
	"log"

	"github.com/ramordeeple/patient-management/internal/analytics/app/bootstrap"
)

func main() {
	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, "configs/analytics-service.yaml")
	if err != nil {
		log.Fatalf("bootstrap analytics runtime: %v", err)
	}
	if err := runtime.Run(ctx); err != nil {
		log.Fatalf("run analytics service: %v", err)
	}
}
