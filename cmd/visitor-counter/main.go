// Package main implements the visitor counter Lambda behind API Gateway GET /visitor.
package main

import (
	"context"
	"log"

	"resume-backend/infrastructure/config"
	"resume-backend/infrastructure/di"
	"resume-backend/interfaces/gateway"

	"github.com/aws/aws-lambda-go/lambda"
)

// handlers is built once per execution environment
var handlers *gateway.Handlers

func init() {
	cfg, err := config.LoadVisitorConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, _, err := di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}

	handlers = gateway.NewHandlers(container.VisitorService, container.ContactService, container.Logger)
	log.Println("Visitor counter handler initialized successfully")
}

func main() {
	lambda.Start(handlers.Visitor)
}
