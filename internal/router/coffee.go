package router

import (
	"quizcafe/internal/handler"
	"quizcafe/internal/middleware"
	"quizcafe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Permissions a coffee-shop token must carry per route.
const (
	PermGetDrinksDetail = "get:drinks-detail"
	PermPostDrinks      = "post:drinks"
	PermPatchDrinks     = "patch:drinks"
	PermDeleteDrinks    = "delete:drinks"
)

// NewCoffeeApp wires the drink routes behind the permission checks.
func NewCoffeeApp(deps Deps, h *handler.DrinkHandler, verifier *service.PermissionVerifier) *fiber.App {
	app := newApp(deps, middleware.CoffeeMessages)

	app.Get("/drinks", h.GetDrinks)
	app.Get("/drinks-detail", middleware.RequiresAuth(verifier, PermGetDrinksDetail), h.GetDrinkDetails)
	app.Post("/drinks", middleware.RequiresAuth(verifier, PermPostDrinks), h.CreateDrink)
	app.Patch("/drinks/:id", middleware.RequiresAuth(verifier, PermPatchDrinks), h.UpdateDrink)
	app.Delete("/drinks/:id", middleware.RequiresAuth(verifier, PermDeleteDrinks), h.DeleteDrink)
	return app
}
