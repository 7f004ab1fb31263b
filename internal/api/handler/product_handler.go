package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns every product.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by name.
//
// @Summary      Get a product by name
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Product name"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /products/{name} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ListByCategory returns the products belonging to a category.
//
// @Summary      List products by category
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category  path     string  true  "Category name"
// @Success      200       {array}  domain.Product
// @Router       /products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.service.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a new product.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ident, domain.Product{
		Name:        req.Name,
		Category:    req.Category,
		Stock:       req.Stock,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update replaces a product's mutable fields.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string          true  "Product name"
// @Param        body  body      productRequest  true  "Updated product"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{name} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), ident, c.Param("name"), domain.Product{
		Name:        req.Name,
		Category:    req.Category,
		Stock:       req.Stock,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        name  path  string  true  "Product name"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /products/{name} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident, c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateStock sets a product's stock level.
//
// @Summary      Update product stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string              true  "Product name"
// @Param        body  body      updateStockRequest  true  "New stock level"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{name}/stock [put]
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateStock(c.Request().Context(), ident, c.Param("name"), req.Stock)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// UpdatePrice sets a product's price.
//
// @Summary      Update product price
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string              true  "Product name"
// @Param        body  body      updatePriceRequest  true  "New price"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{name}/price [put]
func (h *ProductHandler) UpdatePrice(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdatePrice(c.Request().Context(), ident, c.Param("name"), req.Price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// UpdateImage sets a product's image.
//
// @Summary      Update product image
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string              true  "Product name"
// @Param        body  body      updateImageRequest  true  "New image"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{name}/image [put]
func (h *ProductHandler) UpdateImage(c echo.Context) error {
	ident, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updateImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateImage(c.Request().Context(), ident, c.Param("name"), req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
