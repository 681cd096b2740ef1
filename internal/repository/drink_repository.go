package repository

import (
	"context"
	"errors"
	"fmt"

	"quizcafe/internal/domain"
	"quizcafe/internal/repository/models"

	"gorm.io/gorm"
)

type drinkRepository struct {
	db *gorm.DB
}

// NewDrinkRepository creates a gorm-backed domain.DrinkRepository. db must be
// opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
func NewDrinkRepository(db *gorm.DB) domain.DrinkRepository {
	return &drinkRepository{db: db}
}

func (r *drinkRepository) ListDrinks(ctx context.Context) ([]*domain.Drink, error) {
	var rows []models.Drink
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}

	drinks := make([]*domain.Drink, len(rows))
	for i := range rows {
		drinks[i] = toDomainDrink(&rows[i])
	}
	return drinks, nil
}

func (r *drinkRepository) GetDrinkByID(ctx context.Context, id int64) (*domain.Drink, error) {
	var rows []models.Drink
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get drink by id: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainDrink(&rows[0]), nil
}

func (r *drinkRepository) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	m := toModelDrink(drink)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateDrinkError("failed to create drink", err)
	}
	drink.ID = m.ID
	return nil
}

func (r *drinkRepository) UpdateDrink(ctx context.Context, drink *domain.Drink) error {
	if err := r.db.WithContext(ctx).Save(toModelDrink(drink)).Error; err != nil {
		return translateDrinkError("failed to update drink", err)
	}
	return nil
}

func (r *drinkRepository) DeleteDrink(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Drink{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}
	return nil
}

func (r *drinkRepository) PingContext(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func translateDrinkError(msg string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", msg, domain.ErrDuplicateDrinkTitle)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toDomainDrink(m *models.Drink) *domain.Drink {
	recipe := make([]domain.Ingredient, len(m.Recipe))
	for i, ing := range m.Recipe {
		recipe[i] = domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &domain.Drink{ID: m.ID, Title: m.Title, Recipe: recipe}
}

func toModelDrink(d *domain.Drink) *models.Drink {
	recipe := make(models.Recipe, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = models.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}
	return &models.Drink{ID: d.ID, Title: d.Title, Recipe: recipe}
}
