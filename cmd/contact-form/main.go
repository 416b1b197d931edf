// Package main implements the contact form Lambda behind API Gateway POST /contact.
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
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, _, err := di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}

	handlers = gateway.NewHandlers(container.VisitorService, container.ContactService, container.Logger)
	log.Println("Contact form handler initialized successfully")
}

func main() {
	lambda.Start(handlers.Contact)
}
