package controller

import (
	"net/http"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/service"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type supplierRoutesHandler struct {
	supplierService service.Supplier
	scoringService  service.Scoring
	validate        *validator.Validate
}

func newSupplierRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *supplierRoutesHandler {
	h := &supplierRoutesHandler{
		supplierService: services.Supplier,
		scoringService:  services.Scoring,
		validate:        v,
	}

	outer.GET("/suppliers", h.GetSuppliers)
	outer.POST("/suppliers/new", h.PostSupplier)
	outer.PATCH("/suppliers/:supplierId/rename", h.RenameSupplier)
	outer.DELETE("/suppliers/:supplierId", h.DeleteSupplier)
	outer.GET("/suppliers/ranking", h.GetRanking)

	return h
}

// /suppliers
func (h *supplierRoutesHandler) GetSuppliers(c echo.Context) error {
	suppliers, err := h.supplierService.ListSuppliers(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, suppliers); e != nil {
		return e
	}

	return nil
}

type postSupplierInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Contact string `json:"contact" validate:"max=100"`
	Phone   string `json:"phone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
}

// /suppliers/new
func (h *supplierRoutesHandler) PostSupplier(c echo.Context) error {
	var input postSupplierInput
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

	model := &entity.CreateSupplierInput{
		Name: input.Name, Contact: input.Contact, Phone: input.Phone, Email: input.Email,
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, supplier); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrSupplierAlreadyExists:
		if e := c.JSON(http.StatusConflict, errorResponse{"Supplier with given name already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

type renameSupplierInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// /suppliers/:supplierId/rename
func (h *supplierRoutesHandler) RenameSupplier(c echo.Context) error {
	supplierId, err := strconv.ParseInt(c.Param("supplierId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be a number"}); e != nil {
			return e
		}

		return err
	}

	var input renameSupplierInput
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

	supplier, err := h.supplierService.RenameSupplier(c.Request().Context(), supplierId, input.Name)
	if err == nil {
		if e := c.JSON(http.StatusOK, supplier); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	case service.ErrSupplierAlreadyExists:
		if e := c.JSON(http.StatusConflict, errorResponse{"Another supplier already has this name"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

// /suppliers/:supplierId
func (h *supplierRoutesHandler) DeleteSupplier(c echo.Context) error {
	supplierId, err := strconv.ParseInt(c.Param("supplierId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier id must be a number"}); e != nil {
			return e
		}

		return err
	}

	err = h.supplierService.DeleteSupplier(c.Request().Context(), supplierId)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	case service.ErrSupplierHasQuotations:
		if e := c.JSON(http.StatusConflict, errorResponse{"Supplier has quotation history and can't be deleted"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

// /suppliers/ranking
func (h *supplierRoutesHandler) GetRanking(c echo.Context) error {
	ranking, err := h.scoringService.RankSuppliers(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, ranking); e != nil {
		return e
	}

	return nil
}
