package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]*Category{{ID: 1, Type: "Science"}, {ID: 6, Type: "Sports"}})
	assert.Equal(t, map[string]string{"1": "Science", "6": "Sports"}, m)
	assert.Empty(t, CategoryMap(nil))
}

func TestFilterUnseen(t *testing.T) {
	qs := []*Question{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	got := FilterUnseen(qs, []int64{2, 4, 99})
	assert.Equal(t, []*Question{{ID: 1}, {ID: 3}}, got)

	assert.Len(t, FilterUnseen(qs, nil), 4)
	assert.Empty(t, FilterUnseen(qs, []int64{1, 2, 3, 4}))
}

func TestDrinkPatch_Apply(t *testing.T) {
	d := &Drink{ID: 1, Title: "water", Recipe: []Ingredient{{Name: "water", Color: "blue", Parts: 1}}}

	DrinkPatch{}.Apply(d)
	assert.Equal(t, "water", d.Title)

	title := "Water3"
	DrinkPatch{Title: &title}.Apply(d)
	assert.Equal(t, "Water3", d.Title)
	assert.Len(t, d.Recipe, 1)

	DrinkPatch{Recipe: []Ingredient{{Name: "ice", Color: "white", Parts: 2}}}.Apply(d)
	assert.Equal(t, "ice", d.Recipe[0].Name)
}

func TestDomainError_Status(t *testing.T) {
	assert.Equal(t, 400, NewBadRequestError("x").Status())
	assert.Equal(t, 404, NewDrinkNotFoundError(3).Status())
	assert.Equal(t, "Drink with id: 3 could not be found.", NewDrinkNotFoundError(3).Message)
	assert.Equal(t, 422, NewUnprocessableError("x").Status())
	assert.Equal(t, 500, NewInternalError("x", nil).Status())
}
