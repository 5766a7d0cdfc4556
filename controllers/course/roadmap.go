package controllers

import (
	"madrasa/database"
	"madrasa/middleware"
	courseModels "madrasa/models/course"
	courseService "madrasa/services/course"

	"github.com/gofiber/fiber/v2"
)

// ListRoadmaps lists all active roadmaps
func ListRoadmaps(c *fiber.Ctx) error {
	var roadmaps []courseModels.RoadMap
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("created_at desc").Find(&roadmaps).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roadmaps!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmaps fetched successfully!", roadmaps)
}

// GetRoadmapDetails returns a roadmap with its ordered course trees
func GetRoadmapDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roadmapID := c.Locals("roadmapID").(uint)

	details, err := courseService.GetRoadmapDetails(database.Database.Db, roadmapID, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roadmap details fetched successfully!", details)
}

// EnrollRoadmap enrolls the caller into a roadmap
func EnrollRoadmap(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	roadmapID := c.Locals("roadmapID").(uint)

	enrollment, err := courseService.EnrollRoadmap(database.Database.Db, userID, roadmapID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in roadmap successfully!", enrollment)
}

// AdminCreateRoadmap creates a roadmap from an ordered list of courses
func AdminCreateRoadmap(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRoadmap").(*CreateRoadmapRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	roadmap, err := courseService.CreateRoadmap(database.Database.Db, reqData.Title, reqData.Description, reqData.CourseIDs)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Roadmap created successfully!", roadmap)
}

// GetCareerPathDetails returns a career path with its ordered roadmaps
func GetCareerPathDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	careerPathID := c.Locals("careerPathID").(uint)

	details, err := courseService.GetCareerPathDetails(database.Database.Db, careerPathID, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Career path details fetched successfully!", details)
}

// EnrollCareerPath enrolls the caller into a career path
func EnrollCareerPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	careerPathID := c.Locals("careerPathID").(uint)

	enrollment, err := courseService.EnrollCareerPath(database.Database.Db, userID, careerPathID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in career path successfully!", enrollment)
}

// AdminCreateCareerPath creates a career path from an ordered list of roadmaps
func AdminCreateCareerPath(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCareerPath").(*CreateCareerPathRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	careerPath, err := courseService.CreateCareerPath(database.Database.Db, reqData.Title, reqData.Description, reqData.RoadmapIDs)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Career path created successfully!", careerPath)
}
