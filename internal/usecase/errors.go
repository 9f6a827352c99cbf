package usecase

import (
	"errors"
	"fmt"
)

var (
	//ローカル検証で弾く（ネットワーク往復しない）
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")
)

// OrderCreationError は注文作成の失敗。
// レスポンスにorderIdが無かった場合もここに畳む（明細作成へは進まない）。
type OrderCreationError struct {
	Err error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Err)
}

func (e *OrderCreationError) Unwrap() error { return e.Err }

// OrderItemCreationError は注文作成後の明細作成失敗。
// ItemsCreated件まではサーバー側に残っている。
// OrderDeleted は補償削除（作ったばかりの注文の削除）が成功したかどうか。
type OrderItemCreationError struct {
	OrderID      int64
	ProductID    int64
	ItemsCreated int
	OrderDeleted bool
	Err          error
}

func (e *OrderItemCreationError) Error() string {
	if e.OrderDeleted {
		return fmt.Sprintf("order item creation failed for product %d (order %d was rolled back): %v",
			e.ProductID, e.OrderID, e.Err)
	}
	return fmt.Sprintf("order item creation failed for product %d (order %d kept %d items, delete it to start over): %v",
		e.ProductID, e.OrderID, e.ItemsCreated, e.Err)
}

func (e *OrderItemCreationError) Unwrap() error { return e.Err }

// OrderDeletionError は削除失敗。orderIdは保持されたままで、再試行は手動。
type OrderDeletionError struct {
	OrderID int64
	Err     error
}

func (e *OrderDeletionError) Error() string {
	return fmt.Sprintf("order %d deletion failed: %v", e.OrderID, e.Err)
}

func (e *OrderDeletionError) Unwrap() error { return e.Err }

// PaymentInitiationError は決済開始の失敗。
// Descriptionはゲートウェイが返した人間向けの説明（あれば）。
type PaymentInitiationError struct {
	Description string
	Err         error
}

func (e *PaymentInitiationError) Error() string {
	if e.Description != "" {
		return "payment initiation rejected: " + e.Description
	}
	return fmt.Sprintf("payment initiation failed: %v", e.Err)
}

func (e *PaymentInitiationError) Unwrap() error { return e.Err }
