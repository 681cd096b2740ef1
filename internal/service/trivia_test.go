package service

import (
	"context"
	"errors"
	"testing"

	"quizcafe/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fakeQuestions(n int, categoryID int64) []*domain.Question {
	out := make([]*domain.Question, n)
	for i := range out {
		out[i] = &domain.Question{
			ID:         int64(i + 1),
			Question:   gofakeit.Question(),
			Answer:     gofakeit.Word(),
			Difficulty: gofakeit.Number(1, 5),
			CategoryID: categoryID,
		}
	}
	return out
}

func requireDomainCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr), "expected *domain.DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}

var sampleCategories = []*domain.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
}

func TestListCategories(t *testing.T) {
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(new(MockQuestionRepository), categories)
	ctx := context.Background()

	categories.On("ListCategories", ctx).Return(sampleCategories, nil).Once()

	resp, err := svc.ListCategories(ctx)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]string{"1": "Science", "2": "Art"}, resp.Categories)
	categories.AssertExpectations(t)
}

func TestListCategories_StoreError(t *testing.T) {
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(new(MockQuestionRepository), categories)
	ctx := context.Background()

	categories.On("ListCategories", ctx).Return(nil, errors.New("db down")).Once()

	resp, err := svc.ListCategories(ctx)

	assert.Nil(t, resp)
	requireDomainCode(t, err, domain.ErrInternal)
}

func TestListQuestions_Paginates(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(questions, categories)

	all := fakeQuestions(19, 1)
	questions.On("ListQuestions", mock.Anything).Return(all, nil)
	categories.On("ListCategories", mock.Anything).Return(sampleCategories, nil)

	first, err := svc.ListQuestions(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, first.Questions, 10)
	assert.Equal(t, 19, first.TotalQuestions)
	assert.Nil(t, first.CurrentCategory)
	assert.Len(t, first.Categories, 2)
	assert.Equal(t, int64(1), first.Questions[0].ID)

	second, err := svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, second.Questions, 9)
	assert.Equal(t, int64(11), second.Questions[0].ID)

	beyond, err := svc.ListQuestions(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, beyond.Questions)
	assert.Empty(t, beyond.Questions)
	assert.Equal(t, 19, beyond.TotalQuestions)
}

func TestListQuestions_Empty(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(questions, categories)

	questions.On("ListQuestions", mock.Anything).Return([]*domain.Question{}, nil)
	categories.On("ListCategories", mock.Anything).Return(sampleCategories, nil)

	resp, err := svc.ListQuestions(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, resp.Questions)
	assert.Zero(t, resp.TotalQuestions)
}

func TestListQuestions_CategoryLoadFails(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(questions, categories)

	questions.On("ListQuestions", mock.Anything).Return(fakeQuestions(3, 1), nil)
	categories.On("ListCategories", mock.Anything).Return(nil, errors.New("timeout"))

	resp, err := svc.ListQuestions(context.Background(), 1)

	assert.Nil(t, resp)
	requireDomainCode(t, err, domain.ErrInternal)
}

func TestDeleteQuestion(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	questions.On("GetQuestionByID", ctx, int64(5)).Return(&domain.Question{ID: 5}, nil).Once()
	questions.On("DeleteQuestion", ctx, int64(5)).Return(nil).Once()

	resp, err := svc.DeleteQuestion(ctx, 5)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5), resp.Deleted)
	questions.AssertExpectations(t)
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	questions.On("GetQuestionByID", ctx, int64(5)).Return(nil, nil).Once()

	resp, err := svc.DeleteQuestion(ctx, 5)

	assert.Nil(t, resp)
	requireDomainCode(t, err, domain.ErrNotFound)
	questions.AssertNotCalled(t, "DeleteQuestion", mock.Anything, mock.Anything)
}

func TestCreateQuestion(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	q := domain.NewQuestion("Q?", "A", 2, 1)
	questions.On("CreateQuestion", ctx, q).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Question).ID = 42
	}).Return(nil).Once()

	resp, err := svc.CreateQuestion(ctx, q)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.Created)
}

func TestCreateQuestion_UnknownCategory(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	q := domain.NewQuestion("Q?", "A", 2, 999)
	questions.On("CreateQuestion", ctx, q).Return(domain.ErrUnknownCategory).Once()

	_, err := svc.CreateQuestion(ctx, q)
	requireDomainCode(t, err, domain.ErrUnprocessable)
}

func TestSearchQuestions(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	questions.On("SearchQuestions", ctx, "title").Return(fakeQuestions(12, 4), nil)
	questions.On("SearchQuestions", ctx, "zzz").Return([]*domain.Question{}, nil)

	resp, err := svc.SearchQuestions(ctx, "title", 2)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)
	assert.Equal(t, 12, resp.TotalQuestions)
	assert.Nil(t, resp.CurrentCategory)

	none, err := svc.SearchQuestions(ctx, "zzz", 1)
	require.NoError(t, err)
	assert.Empty(t, none.Questions)
	assert.Zero(t, none.TotalQuestions)
}

func TestQuestionsByCategory(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(questions, categories)
	ctx := context.Background()

	categories.On("GetCategoryByID", ctx, int64(1)).Return(&domain.Category{ID: 1, Type: "Science"}, nil)
	questions.On("ListQuestionsByCategory", ctx, int64(1)).Return(fakeQuestions(3, 1), nil)

	resp, err := svc.QuestionsByCategory(ctx, 1, 1)

	require.NoError(t, err)
	assert.Len(t, resp.Questions, 3)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Equal(t, "Science", resp.CurrentCategory)
}

func TestQuestionsByCategory_UnknownCategory(t *testing.T) {
	questions := new(MockQuestionRepository)
	categories := new(MockCategoryRepository)
	svc := NewTriviaService(questions, categories)
	ctx := context.Background()

	categories.On("GetCategoryByID", ctx, int64(999)).Return(nil, nil)

	_, err := svc.QuestionsByCategory(ctx, 999, 1)

	requireDomainCode(t, err, domain.ErrNotFound)
	questions.AssertNotCalled(t, "ListQuestionsByCategory", mock.Anything, mock.Anything)
}

func TestNextQuizQuestion_AllCategories(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository), WithPicker(func(n int) int { return n - 1 }))
	ctx := context.Background()

	questions.On("ListQuestions", ctx).Return(fakeQuestions(4, 1), nil)

	resp, err := svc.NextQuizQuestion(ctx, domain.QuizSelection{CategoryID: domain.AllCategories, PreviousQuestions: []int64{4}})

	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, int64(3), resp.Question.ID)
	questions.AssertNotCalled(t, "ListQuestionsByCategory", mock.Anything, mock.Anything)
}

func TestNextQuizQuestion_ByCategory(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	questions.On("ListQuestionsByCategory", ctx, int64(2)).Return(fakeQuestions(5, 2), nil)

	resp, err := svc.NextQuizQuestion(ctx, domain.QuizSelection{CategoryID: 2, PreviousQuestions: []int64{}})

	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, int64(2), resp.Question.Category)
}

func TestNextQuizQuestion_DrainsPool(t *testing.T) {
	questions := new(MockQuestionRepository)
	svc := NewTriviaService(questions, new(MockCategoryRepository))
	ctx := context.Background()

	pool := fakeQuestions(6, 1)
	questions.On("ListQuestions", ctx).Return(pool, nil)

	seen := []int64{}
	for range pool {
		resp, err := svc.NextQuizQuestion(ctx, domain.QuizSelection{PreviousQuestions: seen})
		require.NoError(t, err)
		require.NotNil(t, resp.Question)
		assert.NotContains(t, seen, resp.Question.ID)
		seen = append(seen, resp.Question.ID)
	}

	resp, err := svc.NextQuizQuestion(ctx, domain.QuizSelection{PreviousQuestions: seen})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Question)
}
