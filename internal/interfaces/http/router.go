package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medsupply/stock-api/internal/application/stock"
	"github.com/medsupply/stock-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CountryUC   *usecase.CountryUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	StockUC     *stock.UseCase
}

// Router registers the API routes. Authentication is handled by an
// upstream gateway, not here.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	countries := api.Group("/countries")
	countryHandler := NewCountryHandler(deps.CountryUC)
	countries.Get("/", countryHandler.List)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)
}
