package dto

import (
	"bytes"
	"encoding/json"

	"quizcafe/internal/domain"
)

// IngredientInput is one recipe layer as posted by the client.
type IngredientInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// RecipeInput accepts either a single ingredient object or an array of them.
// Set is false when the field was absent or null.
type RecipeInput struct {
	Ingredients []IngredientInput
	Set         bool
}

func (r *RecipeInput) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	r.Set = true

	if len(raw) > 0 && raw[0] == '[' {
		return json.Unmarshal(raw, &r.Ingredients)
	}

	var one IngredientInput
	if err := json.Unmarshal(raw, &one); err != nil {
		return err
	}
	r.Ingredients = []IngredientInput{one}
	return nil
}

// Empty reports whether no usable recipe was sent.
func (r RecipeInput) Empty() bool {
	return !r.Set || len(r.Ingredients) == 0
}

// ToDomain converts the posted layers, keeping their order.
func (r RecipeInput) ToDomain() []domain.Ingredient {
	out := make([]domain.Ingredient, len(r.Ingredients))
	for i, in := range r.Ingredients {
		out[i] = domain.Ingredient{Name: in.Name, Color: in.Color, Parts: in.Parts}
	}
	return out
}

// DrinkRequest is the body of POST /drinks and PATCH /drinks/{id}
type DrinkRequest struct {
	Title  *string     `json:"title"`
	Recipe RecipeInput `json:"recipe"`
}

// ShortIngredient hides the ingredient name from the public menu
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

type ShortDrink struct {
	ID     int64             `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

type LongIngredient struct {
	Color string `json:"color"`
	Name  string `json:"name"`
	Parts int    `json:"parts"`
}

type LongDrink struct {
	ID     int64            `json:"id"`
	Title  string           `json:"title"`
	Recipe []LongIngredient `json:"recipe"`
}

func NewShortDrink(d *domain.Drink) ShortDrink {
	recipe := make([]ShortIngredient, len(d.Recipe))
	for i, in := range d.Recipe {
		recipe[i] = ShortIngredient{Color: in.Color, Parts: in.Parts}
	}
	return ShortDrink{ID: d.ID, Title: d.Title, Recipe: recipe}
}

func NewLongDrink(d *domain.Drink) LongDrink {
	recipe := make([]LongIngredient, len(d.Recipe))
	for i, in := range d.Recipe {
		recipe[i] = LongIngredient{Color: in.Color, Name: in.Name, Parts: in.Parts}
	}
	return LongDrink{ID: d.ID, Title: d.Title, Recipe: recipe}
}

type ShortDrinksResponse struct {
	Success bool         `json:"success"`
	Drinks  []ShortDrink `json:"drinks"`
}

type LongDrinksResponse struct {
	Success bool        `json:"success"`
	Drinks  []LongDrink `json:"drinks"`
}

func NewShortDrinksResponse(drinks []*domain.Drink) ShortDrinksResponse {
	out := make([]ShortDrink, len(drinks))
	for i, d := range drinks {
		out[i] = NewShortDrink(d)
	}
	return ShortDrinksResponse{Success: true, Drinks: out}
}

func NewLongDrinksResponse(drinks ...*domain.Drink) LongDrinksResponse {
	out := make([]LongDrink, len(drinks))
	for i, d := range drinks {
		out[i] = NewLongDrink(d)
	}
	return LongDrinksResponse{Success: true, Drinks: out}
}

type DeleteDrinkResponse struct {
	Success bool  `json:"success"`
	Delete  int64 `json:"delete"`
}
