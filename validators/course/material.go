package courseValidator

import (
	controllers "madrasa/controllers/course"
	"madrasa/middleware"
	courseModels "madrasa/models/course"

	"github.com/gofiber/fiber/v2"
)

func CreateVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CreateVideoRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedVideo", reqData)
		return c.Next()
	}
}

// CreateQuiz enforces the fixed four-option shape and that the correct
// answer is one of the options
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CreateQuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		found := false
		for _, option := range reqData.Options {
			if option == reqData.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"correctAnswer": "Correct answer must be one of the options!",
			})
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func CreateQuizGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CreateQuizGroupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedQuizGroup", reqData)
		return c.Next()
	}
}

func CreateArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CreateArticleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedArticle", reqData)
		return c.Next()
	}
}

func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.CreateResourceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// AttachMaterial also rejects unknown material type labels before the
// request reaches the service layer
func AttachMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.AttachMaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		switch courseModels.MaterialType(reqData.MaterialType) {
		case courseModels.MaterialTypeVideo,
			courseModels.MaterialTypeQuiz,
			courseModels.MaterialTypeQuizGroup,
			courseModels.MaterialTypeArticle,
			courseModels.MaterialTypeResource:
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"material_type": "Unknown material type!",
			})
		}

		c.Locals("validatedAttachMaterial", reqData)
		return c.Next()
	}
}
