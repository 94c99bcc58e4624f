package main

import (
	"unitconv/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Unit Converter API
// @version 1.0
// @description REST API for unit conversions: length, weight, volume, temperature and currency.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatalf("Application terminated: %v", err)
	}
}
