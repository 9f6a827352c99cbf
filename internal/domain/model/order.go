package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order はリモートバックエンド所有の注文。
// orderId はサーバー採番が正であり、欠けていたら明細作成へ進まない。
type Order struct {
	OrderID     int64       `json:"orderId"`
	UserID      int64       `json:"userId"`
	TotalAmount Price       `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
