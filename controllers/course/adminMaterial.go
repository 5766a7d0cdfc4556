package controllers

import (
	"madrasa/database"
	"madrasa/middleware"
	courseModels "madrasa/models/course"
	courseService "madrasa/services/course"
	"madrasa/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminCreateVideo creates a video material
func AdminCreateVideo(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVideo").(*CreateVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	video := courseModels.Video{
		URL:      reqData.URL,
		Duration: reqData.Duration,
	}
	if err := database.Database.Db.Create(&video).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create video!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video created successfully!", video)
}

// AdminCreateQuiz creates a quiz material
func AdminCreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := courseModels.Quiz{
		Question:      reqData.Question,
		Options:       datatypes.NewJSONSlice(reqData.Options),
		CorrectAnswer: reqData.CorrectAnswer,
		Explanation:   reqData.Explanation,
	}
	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminCreateQuizGroup bundles existing quizzes into a group, ordered as given
func AdminCreateQuizGroup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuizGroup").(*CreateQuizGroupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	group := courseModels.QuizGroup{Title: reqData.Title}
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		for i, quizID := range reqData.QuizIDs {
			var quiz courseModels.Quiz
			if err := tx.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
				return courseService.ErrMaterialNotFound
			}
			item := courseModels.QuizGroupItem{
				QuizGroupID: group.ID,
				QuizID:      quizID,
				OrderIndex:  i + 1,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz group created successfully!", group)
}

// AdminCreateArticle creates an article material
func AdminCreateArticle(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedArticle").(*CreateArticleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	segments := make([]courseModels.ArticleSegment, len(reqData.Segments))
	for i, segment := range reqData.Segments {
		segments[i] = courseModels.ArticleSegment{Kind: segment.Kind, Content: segment.Content}
	}

	article := courseModels.Article{
		Title:    reqData.Title,
		Segments: datatypes.NewJSONType(segments),
		Duration: reqData.Duration,
	}
	if err := database.Database.Db.Create(&article).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Article created successfully!", article)
}

// AdminCreateResource creates a link/document resource material. External
// links are probed before they are accepted.
func AdminCreateResource(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResource").(*CreateResourceRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.URL != "" {
		if err := utils.CheckLinkReachable(reqData.URL); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource URL is not reachable!", nil)
		}
	}

	resource := courseModels.Resource{
		Title:    reqData.Title,
		Kind:     reqData.Kind,
		URL:      reqData.URL,
		Content:  reqData.Content,
		Duration: reqData.Duration,
	}
	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// AdminAttachMaterial links a material into a lesson at a sibling order
func AdminAttachMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttachMaterial").(*AttachMaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mapper, err := courseService.AttachMaterial(
		database.Database.Db,
		reqData.LessonID,
		reqData.MaterialID,
		courseModels.MaterialType(reqData.MaterialType),
		reqData.Order,
	)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material attached successfully!", mapper)
}

// AdminDetachMaterial removes a material's link to a lesson; the material
// record itself survives
func AdminDetachMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttachMaterial").(*AttachMaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := courseService.DetachMaterial(
		database.Database.Db,
		reqData.LessonID,
		reqData.MaterialID,
		courseModels.MaterialType(reqData.MaterialType),
	)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material detached successfully!", nil)
}
