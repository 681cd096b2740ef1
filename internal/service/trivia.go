package service

import (
	"context"
	"errors"
	"math/rand"

	"quizcafe/internal/domain"
	"quizcafe/internal/dto"
	"quizcafe/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TriviaService defines the trivia API operations
type TriviaService interface {
	ListCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(ctx context.Context, question *domain.Question) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error)
	NextQuizQuestion(ctx context.Context, sel domain.QuizSelection) (*dto.QuizResponse, error)
}

// Picker returns an index in [0, n).
type Picker func(n int) int

type TriviaOption func(*triviaService)

// WithPicker replaces the uniform random quiz picker.
func WithPicker(p Picker) TriviaOption {
	return func(s *triviaService) {
		s.pick = p
	}
}

type triviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	pick       Picker
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, opts ...TriviaOption) TriviaService {
	s := &triviaService{
		questions:  questions,
		categories: categories,
		pick:       rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *triviaService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list categories", err)
	}
	return &dto.CategoriesResponse{Success: true, Categories: domain.CategoryMap(categories)}, nil
}

// ListQuestions loads the questions and the category map concurrently.
func (s *triviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	var (
		questions  []*domain.Question
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.questions.ListQuestions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	return &dto.QuestionListResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(domain.Paginate(questions, page)),
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
		Categories:      domain.CategoryMap(categories),
	}, nil
}

func (s *triviaService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return nil, domain.NewInternalError("Failed to delete question", err)
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
}

// CreateQuestion stores an already validated question.
func (s *triviaService) CreateQuestion(ctx context.Context, question *domain.Question) (*dto.CreateQuestionResponse, error) {
	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return nil, domain.NewError(domain.ErrUnprocessable, "Category does not exist", err)
		}
		return nil, domain.NewInternalError("Failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("question_id", question.ID),
		zap.Int64("category_id", question.CategoryID),
	)
	return &dto.CreateQuestionResponse{Success: true, Created: question.ID}, nil
}

func (s *triviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	matches, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("Failed to search questions", err)
	}

	return &dto.SearchQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(domain.Paginate(matches, page)),
		TotalQuestions:  len(matches),
		CurrentCategory: nil,
	}, nil
}

func (s *triviaService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	category, err := s.categories.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get category", err)
	}
	if category == nil {
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}

	questions, err := s.questions.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list category questions", err)
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(domain.Paginate(questions, page)),
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// NextQuizQuestion draws uniformly among the candidates not yet seen. An
// exhausted pool yields a null question, not an error.
func (s *triviaService) NextQuizQuestion(ctx context.Context, sel domain.QuizSelection) (*dto.QuizResponse, error) {
	var (
		candidates []*domain.Question
		err        error
	)
	if sel.CategoryID == domain.AllCategories {
		candidates, err = s.questions.ListQuestions(ctx)
	} else {
		candidates, err = s.questions.ListQuestionsByCategory(ctx, sel.CategoryID)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz candidates", err)
	}

	unseen := domain.FilterUnseen(candidates, sel.PreviousQuestions)
	if len(unseen) == 0 {
		return &dto.QuizResponse{Success: true, Question: nil}, nil
	}

	picked := dto.NewQuestionResponse(unseen[s.pick(len(unseen))])
	return &dto.QuizResponse{Success: true, Question: &picked}, nil
}
