package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"app/internal/domain/model"
)

type OrderHTTPGateway struct {
	c *Client
}

// DI
func NewOrderHTTPGateway(c *Client) *OrderHTTPGateway {
	return &OrderHTTPGateway{c: c}
}

type createOrderRequest struct {
	UserID      int64   `json:"userId"`
	TotalAmount float64 `json:"totalAmount"`
}

func (g *OrderHTTPGateway) Create(ctx context.Context, userID int64, totalAmount float64) (model.Order, error) {
	var order model.Order

	err := g.c.doJSON(ctx, http.MethodPost, "create-Order", createOrderRequest{
		UserID:      userID,
		TotalAmount: totalAmount,
	}, &order)
	if err != nil {
		return model.Order{}, err
	}

	return order, nil
}

func (g *OrderHTTPGateway) Delete(ctx context.Context, orderID int64) error {
	var res struct {
		Success bool `json:"success"`
	}

	path := fmt.Sprintf("delete-Order/%d", orderID)
	if err := g.c.doJSON(ctx, http.MethodDelete, path, nil, &res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("delete-Order/%d: rejected", orderID)
	}
	return nil
}

func (g *OrderHTTPGateway) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var list orderList

	path := fmt.Sprintf("UserOrders/%d", userID)
	if err := g.c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// orderList は素の配列と {allOrders: [...]} の両方を受ける。
// バージョン違いでレスポンス形が揺れているため境界で正規化する。
type orderList []model.Order

func (l *orderList) UnmarshalJSON(b []byte) error {
	var bare []model.Order
	if err := json.Unmarshal(b, &bare); err == nil {
		*l = bare
		return nil
	}

	var wrapped struct {
		AllOrders []model.Order `json:"allOrders"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	*l = wrapped.AllOrders
	return nil
}
