package model

import "time"

type CheckoutState string

const (
	CheckoutStateIdle            CheckoutState = "IDLE"
	CheckoutStateSubmitting      CheckoutState = "SUBMITTING"
	CheckoutStateItemsSubmitting CheckoutState = "ITEMS_SUBMITTING"
	CheckoutStatePlaced          CheckoutState = "PLACED"
	CheckoutStateDeleting        CheckoutState = "DELETING"
)

// 許可する遷移だけを表で持つ
var checkoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutStateIdle:            {CheckoutStateSubmitting},
	CheckoutStateSubmitting:      {CheckoutStateItemsSubmitting, CheckoutStateIdle},
	CheckoutStateItemsSubmitting: {CheckoutStatePlaced, CheckoutStateIdle},
	CheckoutStatePlaced:          {CheckoutStateDeleting},
	CheckoutStateDeleting:        {CheckoutStateIdle, CheckoutStatePlaced},
}

func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	for _, allowed := range checkoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s CheckoutState) String() string {
	return string(s)
}

// CheckoutSession は1ユーザーの注文確定の進行状態。
// orderId は全明細の作成が済むか、部分失敗で補償削除もできなかった場合に保持される。
type CheckoutSession struct {
	SessionID   string
	UserID      int64
	State       CheckoutState
	OrderID     int64
	TotalAmount float64
	Lines       []CartLine
	UpdatedAt   time.Time
}
