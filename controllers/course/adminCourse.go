package controllers

import (
	"madrasa/database"
	"madrasa/middleware"
	courseModels "madrasa/models/course"
	courseService "madrasa/services/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateCourse creates a new course in draft state
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Level:       reqData.Level,
		Topic:       reqData.Topic,
		CourseInfo: datatypes.NewJSONType(courseModels.CourseInfo{
			DurationHours:   reqData.CourseInfo.DurationHours,
			Tags:            reqData.CourseInfo.Tags,
			NewSkills:       reqData.CourseInfo.NewSkills,
			LearningOutcome: reqData.CourseInfo.LearningOutcome,
			Prerequisites:   reqData.CourseInfo.Prerequisites,
		}),
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminPublishCourse flips a course to published
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_published", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", course)
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminCreateModule creates a standalone module; AttachModule links it into a course
func AdminCreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.Module{
		Title:       reqData.Title,
		Description: reqData.Description,
	}
	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminCreateLesson creates a standalone lesson; AttachLesson links it into a module
func AdminCreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson := courseModels.Lesson{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminAttachModule links a module into a course at a sibling order
func AdminAttachModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttach").(*AttachRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mapper, err := courseService.AttachModule(database.Database.Db, reqData.ParentID, reqData.ChildID, reqData.Order)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module attached successfully!", mapper)
}

// AdminAttachLesson links a lesson into a module at a sibling order
func AdminAttachLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttach").(*AttachRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mapper, err := courseService.AttachLesson(database.Database.Db, reqData.ParentID, reqData.ChildID, reqData.Order)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson attached successfully!", mapper)
}

// AdminDetachLesson removes a lesson's link to a module
func AdminDetachLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttach").(*AttachRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := courseService.DetachLesson(database.Database.Db, reqData.ParentID, reqData.ChildID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson detached successfully!", nil)
}
