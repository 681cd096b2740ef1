package router

import (
	"quizcafe/internal/handler"
	"quizcafe/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// NewTriviaApp wires the trivia routes.
func NewTriviaApp(deps Deps, h *handler.TriviaHandler) *fiber.App {
	app := newApp(deps, middleware.TriviaMessages)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/categories", h.GetCategories)
	app.Get("/categories/:id/questions", h.GetCategoryQuestions)

	app.Get("/questions", h.GetQuestions)
	app.Post("/questions", h.PostQuestion)
	app.Post("/questions/search", h.SearchQuestions)
	app.Delete("/questions/:id", h.DeleteQuestion)

	app.Post("/quizzes", h.PlayQuiz)
	return app
}
