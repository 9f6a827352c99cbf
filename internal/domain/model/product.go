package model

// Product はリモート所有の商品。一覧表示に必要な分だけ持つ。
type Product struct {
	ProductID   int64  `json:"productId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
	Image       string `json:"image"`
}
