package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"quizcafe/internal/domain"
	"quizcafe/internal/dto"
)

const (
	MsgQuestionFieldsMissing = "Question, answer, difficulty and category are required"
	MsgSearchTermMissing     = "searchTerm is required"
	MsgQuizCategoryMissing   = "quiz_category with an id is required"
	MsgDrinkFieldsMissing    = "Title or recipe is missing"
	MsgInvalidIngredient     = "Every recipe ingredient needs a name, a color and at least one part"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestion requires all four fields. Question and answer text
// must not be blank.
func (v *Validator) ValidateCreateQuestion(req *dto.QuestionRequest) (*domain.Question, error) {
	var errs domain.ValidationErrors

	if req.Question == nil || strings.TrimSpace(*req.Question) == "" {
		errs = append(errs, domain.NewMissingFieldError("question"))
	}
	if req.Answer == nil || strings.TrimSpace(*req.Answer) == "" {
		errs = append(errs, domain.NewMissingFieldError("answer"))
	}
	if req.Difficulty == nil {
		errs = append(errs, domain.NewMissingFieldError("difficulty"))
	}
	if req.Category == nil {
		errs = append(errs, domain.NewMissingFieldError("category"))
	}

	if len(errs) > 0 {
		return nil, domain.NewError(domain.ErrBadRequest, MsgQuestionFieldsMissing, errs)
	}

	return domain.NewQuestion(
		*req.Question,
		*req.Answer,
		int(req.Difficulty.Int64()),
		req.Category.Int64(),
	), nil
}

// ValidateSearchTerm rejects an empty term on the dedicated search route.
func (v *Validator) ValidateSearchTerm(term string) error {
	if term == "" {
		return domain.NewError(domain.ErrBadRequest, MsgSearchTermMissing,
			domain.ValidationErrors{domain.NewMissingFieldError("searchTerm")})
	}
	return nil
}

// ValidateQuizRequest requires quiz_category.id; previous_questions defaults
// to an empty list.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) (domain.QuizSelection, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return domain.QuizSelection{}, domain.NewError(domain.ErrBadRequest, MsgQuizCategoryMissing,
			domain.ValidationErrors{domain.NewMissingFieldError("quiz_category.id")})
	}

	previous := []int64{}
	if req.PreviousQuestions != nil {
		previous = *req.PreviousQuestions
	}

	return domain.QuizSelection{
		PreviousQuestions: previous,
		CategoryID:        req.QuizCategory.ID.Int64(),
	}, nil
}

// ValidateNewDrink requires a non-empty title and at least one ingredient.
func (v *Validator) ValidateNewDrink(req *dto.DrinkRequest) (*domain.Drink, error) {
	if req.Title == nil || *req.Title == "" || req.Recipe.Empty() {
		return nil, domain.NewBadRequestError(MsgDrinkFieldsMissing)
	}
	if err := validateTitle(*req.Title); err != nil {
		return nil, err
	}

	recipe := req.Recipe.ToDomain()
	if err := validateRecipe(recipe); err != nil {
		return nil, err
	}
	return domain.NewDrink(*req.Title, recipe), nil
}

// ValidateDrinkPatch keeps only the non-empty fields of req; empty ones leave
// the stored value unchanged.
func (v *Validator) ValidateDrinkPatch(req *dto.DrinkRequest) (domain.DrinkPatch, error) {
	var patch domain.DrinkPatch

	if req.Title != nil && *req.Title != "" {
		if err := validateTitle(*req.Title); err != nil {
			return domain.DrinkPatch{}, err
		}
		patch.Title = req.Title
	}

	if !req.Recipe.Empty() {
		recipe := req.Recipe.ToDomain()
		if err := validateRecipe(recipe); err != nil {
			return domain.DrinkPatch{}, err
		}
		patch.Recipe = recipe
	}
	return patch, nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > domain.MaxDrinkTitleLength {
		return domain.NewError(domain.ErrUnprocessable,
			fmt.Sprintf("Title must be at most %d characters", domain.MaxDrinkTitleLength),
			domain.ValidationErrors{domain.NewInvalidFieldError("title", "too long")})
	}
	return nil
}

func validateRecipe(recipe []domain.Ingredient) error {
	var errs domain.ValidationErrors
	for i, in := range recipe {
		field := fmt.Sprintf("recipe[%d]", i)
		if strings.TrimSpace(in.Name) == "" {
			errs = append(errs, domain.NewMissingFieldError(field+".name"))
		}
		if strings.TrimSpace(in.Color) == "" {
			errs = append(errs, domain.NewMissingFieldError(field+".color"))
		}
		if in.Parts < 1 {
			errs = append(errs, domain.NewInvalidFieldError(field+".parts", "must be at least 1"))
		}
	}
	if len(errs) > 0 {
		return domain.NewError(domain.ErrUnprocessable, MsgInvalidIngredient, errs)
	}
	return nil
}
