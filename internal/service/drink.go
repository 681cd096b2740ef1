package service

import (
	"context"
	"errors"

	"quizcafe/internal/domain"
	"quizcafe/internal/dto"
	"quizcafe/internal/logger"

	"go.uber.org/zap"
)

const (
	msgNoDrinks        = "No drinks found"
	msgDuplicateCreate = "New drink cannot be created due to violation on unique constraint: drink.title"
	msgDuplicateUpdate = "Drink cannot be updated due to violation on unique constraint: drink.title"
)

// DrinkService defines the coffee-shop menu operations
type DrinkService interface {
	ListDrinks(ctx context.Context) (*dto.ShortDrinksResponse, error)
	ListDrinkDetails(ctx context.Context) (*dto.LongDrinksResponse, error)
	CreateDrink(ctx context.Context, drink *domain.Drink) (*dto.LongDrinksResponse, error)
	UpdateDrink(ctx context.Context, id int64, patch domain.DrinkPatch) (*dto.LongDrinksResponse, error)
	DeleteDrink(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error)
}

type drinkService struct {
	repo domain.DrinkRepository
}

// NewDrinkService creates a new instance of drinkService
func NewDrinkService(repo domain.DrinkRepository) DrinkService {
	return &drinkService{repo: repo}
}

func (s *drinkService) listNonEmpty(ctx context.Context) ([]*domain.Drink, error) {
	drinks, err := s.repo.ListDrinks(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list drinks", err)
	}
	if len(drinks) == 0 {
		return nil, domain.NewNotFoundError(msgNoDrinks)
	}
	return drinks, nil
}

// ListDrinks returns the public menu without ingredient names.
func (s *drinkService) ListDrinks(ctx context.Context) (*dto.ShortDrinksResponse, error) {
	drinks, err := s.listNonEmpty(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.NewShortDrinksResponse(drinks)
	return &resp, nil
}

func (s *drinkService) ListDrinkDetails(ctx context.Context) (*dto.LongDrinksResponse, error) {
	drinks, err := s.listNonEmpty(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.NewLongDrinksResponse(drinks...)
	return &resp, nil
}

func (s *drinkService) CreateDrink(ctx context.Context, drink *domain.Drink) (*dto.LongDrinksResponse, error) {
	if err := s.repo.CreateDrink(ctx, drink); err != nil {
		if errors.Is(err, domain.ErrDuplicateDrinkTitle) {
			return nil, domain.NewError(domain.ErrBadRequest, msgDuplicateCreate, err)
		}
		return nil, domain.NewInternalError("Failed to create drink", err)
	}

	logger.Get().Info("Drink created", zap.Int64("drink_id", drink.ID), zap.String("title", drink.Title))
	resp := dto.NewLongDrinksResponse(drink)
	return &resp, nil
}

func (s *drinkService) UpdateDrink(ctx context.Context, id int64, patch domain.DrinkPatch) (*dto.LongDrinksResponse, error) {
	drink, err := s.getExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(drink)
	if err := s.repo.UpdateDrink(ctx, drink); err != nil {
		if errors.Is(err, domain.ErrDuplicateDrinkTitle) {
			return nil, domain.NewError(domain.ErrBadRequest, msgDuplicateUpdate, err)
		}
		return nil, domain.NewInternalError("Failed to update drink", err)
	}

	logger.Get().Info("Drink updated", zap.Int64("drink_id", id))
	resp := dto.NewLongDrinksResponse(drink)
	return &resp, nil
}

func (s *drinkService) DeleteDrink(ctx context.Context, id int64) (*dto.DeleteDrinkResponse, error) {
	if _, err := s.getExisting(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteDrink(ctx, id); err != nil {
		return nil, domain.NewInternalError("Failed to delete drink", err)
	}

	logger.Get().Info("Drink deleted", zap.Int64("drink_id", id))
	return &dto.DeleteDrinkResponse{Success: true, Delete: id}, nil
}

func (s *drinkService) getExisting(ctx context.Context, id int64) (*domain.Drink, error) {
	drink, err := s.repo.GetDrinkByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get drink", err)
	}
	if drink == nil {
		return nil, domain.NewDrinkNotFoundError(id)
	}
	return drink, nil
}
