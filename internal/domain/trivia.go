package domain

import (
	"context"
	"errors"
	"strconv"
)

// ErrUnknownCategory is returned by a QuestionRepository when a question
// references a category that does not exist.
var ErrUnknownCategory = errors.New("category does not exist")

// Question is a single trivia question.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Difficulty int
	CategoryID int64
}

// NewQuestion creates a question that has not been stored yet.
func NewQuestion(question, answer string, difficulty int, categoryID int64) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		CategoryID: categoryID,
	}
}

// Category groups questions; Type is its display label.
type Category struct {
	ID   int64
	Type string
}

func NewCategory(categoryType string) *Category {
	return &Category{Type: categoryType}
}

// CategoryMap builds the {"<id>": "<type>"} view the API returns.
func CategoryMap(categories []*Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.FormatInt(c.ID, 10)] = c.Type
	}
	return m
}

// AllCategories is the quiz category id meaning "draw from every category".
const AllCategories int64 = 0

// QuizSelection is the input of a quiz draw.
type QuizSelection struct {
	PreviousQuestions []int64
	CategoryID        int64
}

// FilterUnseen returns the questions whose ids are not in seen, keeping order.
func FilterUnseen(questions []*Question, seen []int64) []*Question {
	skip := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		skip[id] = struct{}{}
	}
	out := make([]*Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := skip[q.ID]; ok {
			continue
		}
		out = append(out, q)
	}
	return out
}

// QuestionRepository is the question store. Lookups of a missing row return
// (nil, nil).
type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]*Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)
	SearchQuestions(ctx context.Context, term string) ([]*Question, error)
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)
	CreateQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryRepository is the category store. Lookups of a missing row return
// (nil, nil).
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
	GetCategoryByType(ctx context.Context, categoryType string) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
}

// Pinger reports whether a backing store is reachable. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// TransactionManager runs fn inside one store transaction; repositories called
// with the ctx passed to fn join it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
