package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"app/internal/domain/model"
)

type OrderItemHTTPGateway struct {
	c *Client
}

// DI
func NewOrderItemHTTPGateway(c *Client) *OrderItemHTTPGateway {
	return &OrderItemHTTPGateway{c: c}
}

type createOrderItemRequest struct {
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

func (g *OrderItemHTTPGateway) Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error) {
	var created model.OrderItem

	err := g.c.doJSON(ctx, http.MethodPost, "create-OrderItem", createOrderItemRequest{
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price.Float64(),
	}, &created)
	if err != nil {
		return model.OrderItem{}, err
	}

	return created, nil
}

func (g *OrderItemHTTPGateway) ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var list orderItemList

	path := fmt.Sprintf("OrderItemsByOrder/%d", orderID)
	if err := g.c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// orderItemList は素の配列と {items: [...]} の両方を受ける。
type orderItemList []model.OrderItem

func (l *orderItemList) UnmarshalJSON(b []byte) error {
	var bare []model.OrderItem
	if err := json.Unmarshal(b, &bare); err == nil {
		*l = bare
		return nil
	}

	var wrapped struct {
		Items []model.OrderItem `json:"items"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	*l = wrapped.Items
	return nil
}
