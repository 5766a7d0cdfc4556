package courseRoutes

import (
	controllers "madrasa/controllers/course"
	"madrasa/middleware"
	validators "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details
	userGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment lifecycle
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	userGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.RecordProgress(), controllers.RecordProgress)
	userGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetUserProgress)
	userGroup.Delete("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.CancelEnrollment)

	// Dashboard and certificates
	userDashGroup := app.Group("/user")
	userDashGroup.Get("/dashboard", middleware.JWTMiddleware, controllers.GetUserDashboard)
	userDashGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Roadmaps and career paths
	roadmapGroup := app.Group("/roadmap")
	roadmapGroup.Get("/list", middleware.JWTMiddleware, controllers.ListRoadmaps)
	roadmapGroup.Get("/:id", middleware.JWTMiddleware, validators.RoadmapID(), controllers.GetRoadmapDetails)
	roadmapGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.RoadmapID(), controllers.EnrollRoadmap)

	careerGroup := app.Group("/career-path")
	careerGroup.Get("/:id", middleware.JWTMiddleware, validators.CareerPathID(), controllers.GetCareerPathDetails)
	careerGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CareerPathID(), controllers.EnrollCareerPath)
}
