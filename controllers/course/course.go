package controllers

import (
	"madrasa/database"
	"madrasa/middleware"
	"madrasa/models"
	courseModels "madrasa/models/course"
	courseService "madrasa/services/course"
	"madrasa/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with the caller's enrollment state
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var enrollments []courseModels.Enrollment
	database.Database.Db.Where("user_id = ? AND cancelled_at IS NULL AND is_deleted = ?", userID, false).Find(&enrollments)

	enrolledCourseIDs := make(map[uint]courseModels.Enrollment, len(enrollments))
	for _, enrollment := range enrollments {
		enrolledCourseIDs[enrollment.CourseID] = enrollment
	}

	type courseListItem struct {
		courseModels.Course
		DurationHours  int64   `json:"duration_hours"`
		CompletionRate float64 `json:"completion_rate"`
		IsEnrolled     bool    `json:"is_enrolled"`
	}

	result := make([]courseListItem, len(courses))
	for i, course := range courses {
		_, enrolled := enrolledCourseIDs[course.ID]
		result[i] = courseListItem{
			Course:         course,
			DurationHours:  course.CourseInfo.Data().DurationHours / 3600,
			CompletionRate: courseService.CompletionRate(&course),
			IsEnrolled:     enrolled,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourseDetails returns the fully resolved course tree for the caller
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	details, err := courseService.GetCourseDetails(database.Database.Db, courseID, userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", details)
}

// EnrollInCourse enrolls the caller into a course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollment, err := courseService.Enroll(database.Database.Db, userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// RecordProgress marks one material as consumed by the caller
func RecordProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	materialID := c.Locals("materialID").(uint)

	db := database.Database.Db

	var before courseModels.Enrollment
	alreadyFinished := db.Where("user_id = ? AND course_id = ? AND is_finished = ?", userID, courseID, true).
		First(&before).Error == nil

	enrollment, err := courseService.RecordProgress(db, userID, courseID, materialID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	if enrollment.IsFinished && !alreadyFinished {
		var user models.User
		var course courseModels.Course
		var certificate courseModels.Certificate
		if db.First(&user, userID).Error == nil &&
			db.First(&course, courseID).Error == nil &&
			db.Where("enrollment_id = ?", enrollment.ID).First(&certificate).Error == nil {
			utils.SendCourseCompletionEmail(user.Email, user.Name, course.Title, certificate.SerialNumber)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress recorded successfully!", enrollment)
}

// GetUserProgress reports the caller's progress percentage for a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	percent, err := courseService.ProgressPercent(database.Database.Db, userID, courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": percent,
	})
}

// CancelEnrollment soft-cancels the caller's enrollment
func CancelEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	if err := courseService.CancelEnrollment(database.Database.Db, userID, courseID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", nil)
}
