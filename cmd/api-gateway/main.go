package main

import (
	"context"
	"log"

	"github.com/ramordeeple/patient-management/internal/gateway/app/bootstrap"
)

func main() {
	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, "configs/api-gateway.yaml")
	if err != nil {
		log.Fatalf("bootstrap gateway runtime: %v", err)
	}
	if err := runtime.Run(ctx); err != nil {
		log.Fatalf("run api gateway: %v", err)
	}
}
