package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quizcafe/internal/domain"
	"quizcafe/internal/repository/models"
)

const questionColumns = `id "id", question "question", answer "answer", difficulty "difficulty", category "category"`

const (
	listQuestionsQuery           = `SELECT ` + questionColumns + ` FROM questions ORDER BY id`
	listQuestionsByCategoryQuery = `SELECT ` + questionColumns + ` FROM questions WHERE category = :1 ORDER BY id`
	searchQuestionsQuery         = `SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE :1 ESCAPE '\' ORDER BY id`
	questionByIDQuery            = `SELECT ` + questionColumns + ` FROM questions WHERE id = :1`
	nextQuestionIDQuery          = `SELECT questions_seq.NEXTVAL FROM dual`
	insertQuestionQuery          = `INSERT INTO questions (id, question, answer, difficulty, category) VALUES (:1, :2, :3, :4, :5)`
	deleteQuestionQuery          = `DELETE FROM questions WHERE id = :1`
)

// ORA-02291: integrity constraint violated - parent key not found
const oracleParentKeyNotFound = "ORA-02291"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	return a.list(ctx, listQuestionsQuery)
}

func (a *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	return a.list(ctx, listQuestionsByCategoryQuery, categoryID)
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text. LIKE wildcards in term are matched literally.
func (a *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return a.list(ctx, searchQuestionsQuery, pattern)
}

func (a *QuestionDatabaseAdapter) list(ctx context.Context, query string, args ...any) ([]*domain.Question, error) {
	var rows []models.Question
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions, nil
}

func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	err := GetExecutor(ctx, a.db).GetContext(ctx, &row, questionByIDQuery, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}
	return toDomainQuestion(&row), nil
}

// CreateQuestion inserts question and sets its ID from questions_seq
func (a *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	db := GetExecutor(ctx, a.db)

	var id int64
	if err := db.GetContext(ctx, &id, nextQuestionIDQuery); err != nil {
		return fmt.Errorf("failed to allocate question id: %w", err)
	}

	m := toModelQuestion(question)
	m.ID = id
	_, err := db.ExecContext(ctx, insertQuestionQuery, m.ID, m.Question, m.Answer, m.Difficulty, m.Category)
	if err != nil {
		if strings.Contains(err.Error(), oracleParentKeyNotFound) {
			return fmt.Errorf("failed to insert question: %w", domain.ErrUnknownCategory)
		}
		return fmt.Errorf("failed to insert question: %w", err)
	}
	question.ID = id
	return nil
}

func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, deleteQuestionQuery, id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Difficulty: m.Difficulty,
		CategoryID: m.Category,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}
