package handler_test

import (
	"context"

	"quizcafe/internal/domain"
	"quizcafe/internal/dto"
)

// MockTriviaService
type MockTriviaService struct {
	ListCategoriesFunc      func(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestionsFunc       func(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestionFunc      func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	CreateQuestionFunc      func(ctx context.Context, q *domain.Question) (*dto.CreateQuestionResponse, error)
	SearchQuestionsFunc     func(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	QuestionsByCategoryFunc func(ctx context.Context, id int64, page int) (*dto.CategoryQuestionsResponse, error)
	NextQuizQuestionFunc    func(ctx context.Context, sel domain.QuizSelection) (*dto.QuizResponse, error)
}

func (m *MockTriviaService) ListCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockTriviaService.ListCategoriesFunc not implemented")
}
func (m *MockTriviaService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockTriviaService.ListQuestionsFunc not implemented")
}
func (m *MockTriviaService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockTriviaService.DeleteQuestionFunc not implemented")
}
func (m *MockTriviaService) CreateQuestion(ctx context.Context, q *domain.Question) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, q)
	}
	panic("MockTriviaService.CreateQuestionFunc not implemented")
}
func (m *MockTriviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term, page)
	}
	panic("MockTriviaService.SearchQuestionsFunc not implemented")
}
func (m *MockTriviaService) QuestionsByCategory(ctx context.Context, id int64, page int) (*dto.CategoryQuestionsResponse, error) {
	if m.QuestionsByCategoryFunc != nil {
		return m.QuestionsByCategoryFunc(ctx, id, page)
	}
	panic("MockTriviaService.QuestionsByCategoryFunc not implemented")
}
func (m *MockTriviaService) NextQuizQuestion(ctx context.Context, sel domain.QuizSelection) (*dto.QuizResponse, error) {
	if m.NextQuizQuestionFunc != nil {
		return m.NextQuizQuestionFunc(ctx, sel)
	}
	panic("MockTriviaService.NextQuizQuestionFunc not implemented")
}

// MockDrinkService
type MockDrinkService struct {
	ListDrinksFunc       func(ctx context.Context) (*dto.ShortDrinksResponse, error)
	ListDrinkDetailsFunc func(ctx context.Context) (*dto.LongDrinksResponse, error)
	CreateDrinkFunc      func(ctx context.Context, d *domain.Drink) (*dto.LongDrinksResponse, error)
	UpdateDrinkFunc      func(ctx context.Context, id int64, patch domain.DrinkPatch) (*dto.LongDrinksResponse, error)
	DeleteDrinkFunc      func(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error)
}

func (m *MockDrinkService) ListDrinks(ctx context.Context) (*dto.ShortDrinksResponse, error) {
	if m.ListDrinksFunc != nil {
		return m.ListDrinksFunc(ctx)
	}
	panic("MockDrinkService.ListDrinksFunc not implemented")
}
func (m *MockDrinkService) ListDrinkDetails(ctx context.Context) (*dto.LongDrinksResponse, error) {
	if m.ListDrinkDetailsFunc != nil {
		return m.ListDrinkDetailsFunc(ctx)
	}
	panic("MockDrinkService.ListDrinkDetailsFunc not implemented")
}
func (m *MockDrinkService) CreateDrink(ctx context.Context, d *domain.Drink) (*dto.LongDrinksResponse, error) {
	if m.CreateDrinkFunc != nil {
		return m.CreateDrinkFunc(ctx, d)
	}
	panic("MockDrinkService.CreateDrinkFunc not implemented")
}
func (m *MockDrinkService) UpdateDrink(ctx context.Context, id int64, patch domain.DrinkPatch) (*dto.LongDrinksResponse, error) {
	if m.UpdateDrinkFunc != nil {
		return m.UpdateDrinkFunc(ctx, id, patch)
	}
	panic("MockDrinkService.UpdateDrinkFunc not implemented")
}
func (m *MockDrinkService) DeleteDrink(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error) {
	if m.DeleteDrinkFunc != nil {
		return m.DeleteDrinkFunc(ctx, id)
	}
	panic("MockDrinkService.DeleteDrinkFunc not implemented")
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
