package controller

import (
	"net/http"
	"quotation-management-api/internal/entity"
	"quotation-management-api/internal/service"

	"github.com/labstack/echo"
)

type allocationRoutesHandler struct {
	allocationService service.Allocation
}

func newAllocationRoutesHandler(outer *echo.Group, services *service.Services) *allocationRoutesHandler {
	h := &allocationRoutesHandler{
		allocationService: services.Allocation,
	}

	outer.POST("/allocations/run", h.PostRunBatch)

	return h
}

type runBatchInput struct {
	Bids entity.BidMatrix `json:"bids"`
}

// /allocations/run
func (h *allocationRoutesHandler) PostRunBatch(c echo.Context) error {
	var input runBatchInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	report, err := h.allocationService.RunBatch(c.Request().Context(), input.Bids)
	if err == nil {
		if e := c.JSON(http.StatusOK, report); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrNoPendingRequests:
		if e := c.JSON(http.StatusConflict, errorResponse{"There are no pending requests to allocate"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
