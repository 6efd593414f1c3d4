package controller

import (
	"net/http"
	"quotation-management-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type authRoutesHandler struct {
	authService service.Auth
	validate    *validator.Validate
}

func newAuthRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *authRoutesHandler {
	h := &authRoutesHandler{authService: services.Auth, validate: v}

	outer.POST("/auth/login", h.Login)
	outer.POST("/auth/register", h.Register)

	return h
}

type loginInput struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

type tokenOutput struct {
	Token string `json:"token"`
}

// /auth/login
func (h *authRoutesHandler) Login(c echo.Context) error {
	var input loginInput
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

	token, err := h.authService.Login(c.Request().Context(), input.Username, input.Password)
	if err == nil {
		if e := c.JSON(http.StatusOK, tokenOutput{Token: token}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidCredentials:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid username or password"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

type registerInput struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"max=150"`
}

// /auth/register
func (h *authRoutesHandler) Register(c echo.Context) error {
	var input registerInput
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

	user, err := h.authService.Register(c.Request().Context(), input.Username, input.Email, input.Password, input.FullName)
	if err == nil {
		if e := c.JSON(http.StatusOK, user); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserAlreadyExists:
		if e := c.JSON(http.StatusConflict, errorResponse{"User with given username or email already exists"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
