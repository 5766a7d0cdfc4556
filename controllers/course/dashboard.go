package controllers

import (
	"madrasa/database"
	"madrasa/middleware"
	courseModels "madrasa/models/course"
	courseService "madrasa/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetUserDashboard aggregates the caller's learning stats and current courses
func GetUserDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	completedCourses, err := courseService.CompletedCoursesCount(db, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	completedHours, err := courseService.CompletedHours(db, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	streak, err := courseService.Streak(db, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	currentCourses, err := courseService.CurrentCoursesForUser(db, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"completed_courses": completedCourses,
		"completed_hours":   completedHours,
		"streak":            streak,
		"current_courses":   currentCourses,
	})
}

// GetUserCertificates lists the certificates issued to the caller
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}
