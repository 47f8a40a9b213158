package handlers

import (
	"moneta/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if sqlDB, err := repositories.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	cacheStatus := "disabled"
	if repositories.CacheService != nil {
		cacheStatus = "connected"
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			cacheStatus = "unreachable"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"services": fiber.Map{
			"database": dbStatus,
			"redis":    cacheStatus,
		},
	})
}
