package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

// OrderUsecase は注文履歴の照会（リモート注文サービスへの委譲）。
// 作成・削除はCheckoutUsecaseの仕事であり、ここでは読むだけ。
type OrderUsecase struct {
	orders gateway.OrderGateway
	items  gateway.OrderItemGateway
}

// DI
func NewOrderUsecase(orders gateway.OrderGateway, items gateway.OrderItemGateway) *OrderUsecase {
	return &OrderUsecase{orders: orders, items: items}
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "order service unavailable")
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (u *OrderUsecase) ListMyOrderItems(ctx context.Context, userID int64, orderID int64) ([]model.OrderItem, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	//所有チェック。他人の注文は「存在しない扱い」にする。
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "order service unavailable")
	}

	owned := false
	for _, o := range orders {
		if o.OrderID == orderID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.items.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "order service unavailable")
	}
	if items == nil {
		items = []model.OrderItem{}
	}
	return items, nil
}
