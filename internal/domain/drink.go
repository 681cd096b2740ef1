package domain

import (
	"context"
	"errors"
)

// MaxDrinkTitleLength bounds Drink.Title; the column is unique.
const MaxDrinkTitleLength = 80

// ErrDuplicateDrinkTitle is returned by a DrinkRepository when a write would
// give two drinks the same title.
var ErrDuplicateDrinkTitle = errors.New("drink title already exists")

// Ingredient is one layer of a drink recipe.
type Ingredient struct {
	Name  string
	Color string
	Parts int
}

// Drink is a menu item with its layered recipe.
type Drink struct {
	ID     int64
	Title  string
	Recipe []Ingredient
}

func NewDrink(title string, recipe []Ingredient) *Drink {
	return &Drink{Title: title, Recipe: recipe}
}

// DrinkPatch holds the fields of a partial update; nil means unchanged.
type DrinkPatch struct {
	Title  *string
	Recipe []Ingredient
}

// Apply copies the set fields of p onto d.
func (p DrinkPatch) Apply(d *Drink) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Recipe != nil {
		d.Recipe = p.Recipe
	}
}

// DrinkRepository is the drink store. GetDrinkByID returns (nil, nil) when the
// drink does not exist.
type DrinkRepository interface {
	ListDrinks(ctx context.Context) ([]*Drink, error)
	GetDrinkByID(ctx context.Context, id int64) (*Drink, error)
	CreateDrink(ctx context.Context, drink *Drink) error
	UpdateDrink(ctx context.Context, drink *Drink) error
	DeleteDrink(ctx context.Context, id int64) error
	PingContext(ctx context.Context) error
}
