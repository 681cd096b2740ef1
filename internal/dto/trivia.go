package dto

import "quizcafe/internal/domain"

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}

// NewQuestionResponses never returns nil, so empty pages encode as [].
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = NewQuestionResponse(q)
	}
	return out
}

// CategoriesResponse maps category id to its type
type CategoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

// QuestionListResponse is one page of all questions
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
	Categories      map[string]string  `json:"categories"`
}

// SearchQuestionsResponse is one page of search matches
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *string            `json:"current_category"`
}

// CategoryQuestionsResponse is one page of a category's questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory string             `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type CreateQuestionResponse struct {
	Success bool  `json:"success"`
	Created int64 `json:"created"`
}

// QuizResponse carries the drawn question, or null once the pool is exhausted
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// QuestionRequest is the body of POST /questions. A non-empty SearchTerm
// turns the request into a search. Null fields count as absent.
// @Description Create a question, or search when searchTerm is set
type QuestionRequest struct {
	Question   *string      `json:"question"`
	Answer     *string      `json:"answer"`
	Difficulty *IntOrString `json:"difficulty" swaggertype:"integer"`
	Category   *IntOrString `json:"category" swaggertype:"integer"`
	SearchTerm *string      `json:"searchTerm"`
}

// IsSearch reports whether the body asks for a search.
func (r *QuestionRequest) IsSearch() bool {
	return r.SearchTerm != nil && *r.SearchTerm != ""
}

// SearchRequest is the body of POST /questions/search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory identifies the category to draw from; id 0 means all.
type QuizCategory struct {
	ID *IntOrString `json:"id" swaggertype:"integer"`
}

// QuizRequest is the body of POST /quizzes
// @Description Draw the next quiz question
type QuizRequest struct {
	PreviousQuestions *[]int64      `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}
