package controller

import (
	"net/http"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/service"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type productRoutesHandler struct {
	productService service.Product
	validate       *validator.Validate
}

func newProductRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *productRoutesHandler {
	h := &productRoutesHandler{productService: services.Product, validate: v}

	outer.GET("/products", h.GetProducts)
	outer.POST("/products/new", h.PostProduct)
	outer.PATCH("/products/:productId/rename", h.RenameProduct)
	outer.DELETE("/products/:productId", h.DeleteProduct)

	return h
}

// /products
func (h *productRoutesHandler) GetProducts(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, products); e != nil {
		return e
	}

	return nil
}

type postProductInput struct {
	Id       int64  `json:"id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,min=3,max=150"`
	Category string `json:"category" validate:"max=50"`
}

// /products/new
func (h *productRoutesHandler) PostProduct(c echo.Context) error {
	var input postProductInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateProductInput{Id: input.Id, Name: input.Name, Category: input.Category}

	product, err := h.productService.CreateProduct(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, product); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidProductCode:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Product code must be a positive number"}); e != nil {
			return e
		}
	case service.ErrProductAlreadyExists:
		if e := c.JSON(http.StatusConflict, errorResponse{"Product with given code already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

type renameProductInput struct {
	Name string `json:"name" validate:"required,min=3,max=150"`
}

// /products/:productId/rename
func (h *productRoutesHandler) RenameProduct(c echo.Context) error {
	productId, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Product id must be a number"}); e != nil {
			return e
		}

		return err
	}

	var input renameProductInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	product, err := h.productService.RenameProduct(c.Request().Context(), productId, input.Name)
	if err == nil {
		if e := c.JSON(http.StatusOK, product); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrProductNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no product with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

// /products/:productId
func (h *productRoutesHandler) DeleteProduct(c echo.Context) error {
	productId, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Product id must be a number"}); e != nil {
			return e
		}

		return err
	}

	err = h.productService.DeleteProduct(c.Request().Context(), productId)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrProductNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no product with given id"}); e != nil {
			return e
		}
	case service.ErrProductHasHistory:
		if e := c.JSON(http.StatusConflict, errorResponse{"Product has quotation or request history and can't be deleted"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
