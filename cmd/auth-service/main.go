package main

import (
	"context"
	"log"

	"github.com/ramordeeple/patient-management/internal/auth/app/bootstrap"
)

func main() {
	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, "configs/auth-service.yaml")
	if err != nil {
		log.Fatalf("bootstrap auth runtime: %v", err)
	}
	if err := runtime.Run(ctx); err != nil {
		log.Fatalf("run auth service: %v", err)
	}
}
