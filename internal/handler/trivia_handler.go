package handler

import (
	"quizcafe/internal/dto"
	"quizcafe/internal/service"
	"quizcafe/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles trivia HTTP requests
type TriviaHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService, validator *validation.Validator) *TriviaHandler {
	return &TriviaHandler{
		service:   service,
		validator: validator,
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category as an id to type map
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of ten questions with the category map
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), pageParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuestion godoc
// @Summary Create or search questions
// @Description Creates a question, or searches question text when searchTerm is set
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number when searching" default(1)
// @Param question body dto.QuestionRequest true "Question or search"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) PostQuestion(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if req.IsSearch() {
		resp, err := h.service.SearchQuestions(c.UserContext(), *req.SearchTerm, pageParam(c))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	question, err := h.validator.ValidateCreateQuestion(&req)
	if err != nil {
		return err
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), question)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param search body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateSearchTerm(req.SearchTerm); err != nil {
		return err
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), req.SearchTerm, pageParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	resp, err := h.service.QuestionsByCategory(c.UserContext(), id, pageParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PlayQuiz godoc
// @Summary Draw the next quiz question
// @Description Returns a random unseen question of the category, or null when none is left. Category id 0 means all categories.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	sel, err := h.validator.ValidateQuizRequest(&req)
	if err != nil {
		return err
	}

	resp, err := h.service.NextQuizQuestion(c.UserContext(), sel)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
