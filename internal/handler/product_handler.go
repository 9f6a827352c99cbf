package handler

import (
	"errors"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//リモート側の失敗は説明付きで返す（黙って失敗しない）
	var orderErr *usecase.OrderCreationError
	if errors.As(err, &orderErr) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: orderErr.Error()})
	}
	var itemErr *usecase.OrderItemCreationError
	if errors.As(err, &itemErr) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: itemErr.Error()})
	}
	var delErr *usecase.OrderDeletionError
	if errors.As(err, &delErr) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: delErr.Error()})
	}
	var payErr *usecase.PaymentInitiationError
	if errors.As(err, &payErr) {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: payErr.Error()})
	}
	if errors.Is(err, usecase.ErrInvalidPhoneFormat) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
