package routes

import (
	"genequest/backend/config"
	"genequest/backend/controllers"
	"genequest/backend/engine"
	"genequest/backend/middleware"
	"genequest/backend/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires the HTTP surface onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, sync *store.SyncController, manager *engine.Manager) {
	gormStore := store.NewGormStore(db)

	authController := controllers.NewAuthController(db, cfg, sync)
	gameController := controllers.NewGameController(manager, sync, gormStore, cfg)
	leaderboardController := controllers.NewLeaderboardController(gormStore)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Get("/user", middleware.AuthMiddleware(cfg), authController.GetUser)

	game := api.Group("/game", middleware.AuthMiddleware(cfg))
	game.Get("/progress", gameController.GetProgress)
	game.Get("/unlocks", gameController.GetUnlocks)
	game.Get("/summary", gameController.GetSummary)
	game.Post("/tests/:testType/answers", gameController.SubmitTestAnswer)
	game.Get("/tests/:testType/responses", gameController.GetTestResponses)
	game.Post("/lessons/:id/step", gameController.AdvanceLessonStep)
	game.Post("/lessons/:id/drill", gameController.DrillAction)
	game.Post("/lessons/:id/complete", gameController.CompleteLesson)

	api.Get("/leaderboard", middleware.AuthMiddleware(cfg), leaderboardController.GetLeaderboard)
	api.Get("/leaderboard/export",
		middleware.AuthMiddleware(cfg), middleware.TeacherMiddleware(db),
		leaderboardController.ExportLeaderboard)

	class := api.Group("/class", middleware.AuthMiddleware(cfg))
	class.Post("/", middleware.TeacherMiddleware(db), leaderboardController.CreateClass)
	class.Post("/join", leaderboardController.JoinClass)
	class.Get("/:id/members", leaderboardController.GetClassMembers)
}
