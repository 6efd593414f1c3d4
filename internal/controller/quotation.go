package controller

import (
	"net/http"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/service"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type quotationRoutesHandler struct {
	quotationService service.Quotation
	validate         *validator.Validate
}

func newQuotationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *quotationRoutesHandler {
	h := &quotationRoutesHandler{
		quotationService: services.Quotation,
		validate:         v,
	}

	outer.GET("/quotations", h.GetQuotations)
	outer.DELETE("/quotations/:quotationId", h.DeleteQuotation)

	return h
}

type getQuotationsInput struct {
	SupplierId int64  `query:"supplierId" validate:"omitempty,gt=0"`
	ProductId  int64  `query:"productId" validate:"omitempty,gt=0"`
	DateFrom   string `query:"dateFrom" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `query:"dateTo" validate:"omitempty,datetime=2006-01-02"`
}

// /quotations
func (h *quotationRoutesHandler) GetQuotations(c echo.Context) error {
	var input getQuotationsInput
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

	filter := &entity.QuotationFilter{
		SupplierId: input.SupplierId,
		ProductId:  input.ProductId,
		DateFrom:   input.DateFrom,
		DateTo:     input.DateTo,
	}

	history, err := h.quotationService.History(c.Request().Context(), filter)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, history); e != nil {
		return e
	}

	return nil
}

// /quotations/:quotationId
func (h *quotationRoutesHandler) DeleteQuotation(c echo.Context) error {
	quotationId, err := strconv.ParseInt(c.Param("quotationId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Quotation id must be a number"}); e != nil {
			return e
		}

		return err
	}

	err = h.quotationService.DeleteQuotation(c.Request().Context(), quotationId)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrQuotationNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no quotation with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
