package gateway

import (
	"context"

	"app/internal/domain/model"
)

// リモートの注文サービス
type OrderGateway interface {
	Create(ctx context.Context, userID int64, totalAmount float64) (model.Order, error)
	Delete(ctx context.Context, orderID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}

// リモートの注文明細サービス
type OrderItemGateway interface {
	Create(ctx context.Context, item model.OrderItem) (model.OrderItem, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}

// リモートの決済ゲートウェイ（STK Push発行のみ。完了ポーリングはしない）
type PaymentGateway interface {
	InitiateSTKPush(ctx context.Context, req model.STKPushRequest) (model.STKPushResponse, error)
}

// リモートの商品サービス
type ProductGateway interface {
	ListAll(ctx context.Context) ([]model.Product, error)
}
