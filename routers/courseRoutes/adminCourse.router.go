package courseRoutes

import (
	controllers "madrasa/controllers/course"
	"madrasa/middleware"
	validators "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)

	// Modules and lessons are created standalone and linked via attach
	adminGroup.Post("/module", validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Post("/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)

	// Tree wiring
	adminGroup.Post("/attach/module", validators.Attach(), controllers.AdminAttachModule)
	adminGroup.Post("/attach/lesson", validators.Attach(), controllers.AdminAttachLesson)
	adminGroup.Delete("/attach/lesson", validators.Attach(), controllers.AdminDetachLesson)

	// Material catalog
	materialGroup := app.Group("/admin/material", middleware.JWTMiddleware, middleware.AdminOnly)
	materialGroup.Post("/video", validators.CreateVideo(), controllers.AdminCreateVideo)
	materialGroup.Post("/quiz", validators.CreateQuiz(), controllers.AdminCreateQuiz)
	materialGroup.Post("/quiz-group", validators.CreateQuizGroup(), controllers.AdminCreateQuizGroup)
	materialGroup.Post("/article", validators.CreateArticle(), controllers.AdminCreateArticle)
	materialGroup.Post("/resource", validators.CreateResource(), controllers.AdminCreateResource)
	materialGroup.Post("/attach", validators.AttachMaterial(), controllers.AdminAttachMaterial)
	materialGroup.Delete("/attach", validators.AttachMaterial(), controllers.AdminDetachMaterial)

	// Roadmaps and career paths
	roadmapGroup := app.Group("/admin/roadmap", middleware.JWTMiddleware, middleware.AdminOnly)
	roadmapGroup.Post("/create", validators.CreateRoadmap(), controllers.AdminCreateRoadmap)

	careerGroup := app.Group("/admin/career-path", middleware.JWTMiddleware, middleware.AdminOnly)
	careerGroup.Post("/create", validators.CreateCareerPath(), controllers.AdminCreateCareerPath)
}
