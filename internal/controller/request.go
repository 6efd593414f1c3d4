package controller

import (
	"net/http"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/service"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type requestRoutesHandler struct {
	requestService   service.Request
	quotationService service.Quotation
	validate         *validator.Validate
}

func newRequestRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *requestRoutesHandler {
	h := &requestRoutesHandler{
		requestService:   services.Request,
		quotationService: services.Quotation,
		validate:         v,
	}

	outer.GET("/requests/pending", h.GetPendingRequests)
	outer.POST("/requests/new", h.PostRequest)
	outer.DELETE("/requests/:requestId", h.DeleteRequest)
	outer.POST("/requests/:requestId/quote", h.PostQuote)

	return h
}

// /requests/pending
func (h *requestRoutesHandler) GetPendingRequests(c echo.Context) error {
	requests, err := h.requestService.ListPendingRequests(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, requests); e != nil {
		return e
	}

	return nil
}

type postRequestInput struct {
	ProductId   int64   `json:"productId" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=Normal High"`
	SupplierIds []int64 `json:"supplierIds" validate:"dive,gt=0"`
}

// /requests/new
func (h *requestRoutesHandler) PostRequest(c echo.Context) error {
	var input postRequestInput
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

	model := &entity.CreateRequestInput{
		ProductId:            input.ProductId,
		Quantity:             input.Quantity,
		Priority:             input.Priority,
		CandidateSupplierIds: input.SupplierIds,
	}

	request, err := h.requestService.CreateRequest(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, request); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrProductNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no product with given id"}); e != nil {
			return e
		}
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"One of the candidate suppliers doesn't exist"}); e != nil {
			return e
		}
	case service.ErrSupplierInactive:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"One of the candidate suppliers is not active"}); e != nil {
			return e
		}
	case service.ErrInvalidQuantity:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Quantity must be at least 1"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

// /requests/:requestId
func (h *requestRoutesHandler) DeleteRequest(c echo.Context) error {
	requestId, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Request id must be a number"}); e != nil {
			return e
		}

		return err
	}

	err = h.requestService.DeleteRequest(c.Request().Context(), requestId)
	if err == nil {
		if e := c.NoContent(http.StatusNoContent); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRequestNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no request with given id"}); e != nil {
			return e
		}
	case service.ErrRequestNotPending:
		if e := c.JSON(http.StatusConflict, errorResponse{"Only pending requests can be deleted"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

type postQuoteInput struct {
	SupplierId int64  `json:"supplierId" validate:"required,gt=0"`
	Price      string `json:"price" validate:"required"`
}

// /requests/:requestId/quote
func (h *requestRoutesHandler) PostQuote(c echo.Context) error {
	requestId, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Request id must be a number"}); e != nil {
			return e
		}

		return err
	}

	var input postQuoteInput
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

	quotation, err := h.quotationService.RecordForRequest(c.Request().Context(), requestId, input.SupplierId, input.Price)
	if err == nil {
		if e := c.JSON(http.StatusOK, quotation); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRequestNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no request with given id"}); e != nil {
			return e
		}
	case service.ErrRequestNotPending:
		if e := c.JSON(http.StatusConflict, errorResponse{"Request is no longer pending"}); e != nil {
			return e
		}
	case service.ErrSupplierNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no supplier with given id"}); e != nil {
			return e
		}
	case service.ErrSupplierInactive:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Supplier is not active"}); e != nil {
			return e
		}
	case service.ErrInvalidPrice:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Price must be a positive number"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
