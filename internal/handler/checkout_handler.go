package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	paymentUC  *usecase.PaymentUsecase
}

// DI
func NewCheckoutHandler(checkoutUC *usecase.CheckoutUsecase, paymentUC *usecase.PaymentUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, paymentUC: paymentUC}
}

type InitiatePaymentRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.status)
	g.POST("/order", h.createOrder)
	g.DELETE("/order", h.deleteOrder)
	g.POST("/payment", h.initiatePayment)
}

type CheckoutStatusResponse struct {
	State       string  `json:"state"`
	OrderID     int64   `json:"order_id,omitempty"`
	TotalAmount float64 `json:"total_amount,omitempty"`
}

func (h *CheckoutHandler) status(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	sess, ok := h.checkoutUC.Session(userID)
	if !ok {
		return c.JSON(http.StatusOK, CheckoutStatusResponse{State: "IDLE"})
	}

	return c.JSON(http.StatusOK, CheckoutStatusResponse{
		State:       sess.State.String(),
		OrderID:     sess.OrderID,
		TotalAmount: sess.TotalAmount,
	})
}

func (h *CheckoutHandler) createOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.checkoutUC.CreateOrder(requestContext(c), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) deleteOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.checkoutUC.DeleteOrder(requestContext(c), userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order deleted"})
}

func (h *CheckoutHandler) initiatePayment(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.paymentUC.InitiateSTKPush(requestContext(c), userID, req.PhoneNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
