package main

import (
	"context"
	"log"

	"github.com/ramordeeple/patient-management/internal/patient/app/bootstrap"
)

func main() {
	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, "configs/patient-service.yaml")
	if err != nil {
		log.Fatalf("bootstrap patient runtime: %v", err)
	}
	if err := runtime.Run(ctx); err != nil {
		log.Fatalf("run patient service: %v", err)
	}
}
