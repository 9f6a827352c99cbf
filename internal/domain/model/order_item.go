package model

// OrderItem はカート1行を注文へ紐づけた明細。
// price は注文時点の単価スナップショット（以後の価格変更の影響を受けない）。
type OrderItem struct {
	OrderItemID int64 `json:"orderItemId"`
	OrderID     int64 `json:"orderId"`
	ProductID   int64 `json:"productId"`
	Quantity    int64 `json:"quantity"`
	Price       Price `json:"price"`
}
