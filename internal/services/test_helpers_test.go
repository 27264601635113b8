package services_test

import (
	"github.com/devportfolio/portfolio-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
