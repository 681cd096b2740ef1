package handler

import (
	"quizcafe/internal/dto"
	"quizcafe/internal/service"
	"quizcafe/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DrinkHandler handles coffee-shop menu requests
type DrinkHandler struct {
	service   service.DrinkService
	validator *validation.Validator
}

func NewDrinkHandler(service service.DrinkService, validator *validation.Validator) *DrinkHandler {
	return &DrinkHandler{
		service:   service,
		validator: validator,
	}
}

// GetDrinks serves the public menu.
func (h *DrinkHandler) GetDrinks(c *fiber.Ctx) error {
	resp, err := h.service.ListDrinks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDrinkDetails serves the menu with full recipes.
func (h *DrinkHandler) GetDrinkDetails(c *fiber.Ctx) error {
	resp, err := h.service.ListDrinkDetails(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *DrinkHandler) CreateDrink(c *fiber.Ctx) error {
	var req dto.DrinkRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	drink, err := h.validator.ValidateNewDrink(&req)
	if err != nil {
		return err
	}

	resp, err := h.service.CreateDrink(c.UserContext(), drink)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *DrinkHandler) UpdateDrink(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.DrinkRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	patch, err := h.validator.ValidateDrinkPatch(&req)
	if err != nil {
		return err
	}

	resp, err := h.service.UpdateDrink(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *DrinkHandler) DeleteDrink(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	resp, err := h.service.DeleteDrink(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
