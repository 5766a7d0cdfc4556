package controllers

import (
	"errors"

	"madrasa/middleware"
	courseService "madrasa/services/course"

	"github.com/gofiber/fiber/v2"
)

// serviceErrorResponse maps the typed service errors onto the response envelope
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, courseService.ErrCourseNotFound),
		errors.Is(err, courseService.ErrModuleNotFound),
		errors.Is(err, courseService.ErrLessonNotFound),
		errors.Is(err, courseService.ErrMaterialNotFound),
		errors.Is(err, courseService.ErrEnrollmentNotFound),
		errors.Is(err, courseService.ErrRoadmapNotFound),
		errors.Is(err, courseService.ErrCareerPathNotFound),
		errors.Is(err, courseService.ErrUserNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, courseService.ErrAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case errors.Is(err, courseService.ErrInvalidMaterialType):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
