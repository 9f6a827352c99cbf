package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"app/internal/domain/model"
	"app/internal/gateway"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

// CheckoutUsecase はカートのスナップショットを注文1件＋明細N件として
// リモートへ確定させる逐次処理。明細は1行ずつ順に送り、失敗したらそこで止める。
// 自動リトライ・タイムアウト・キャンセルは持たない（再試行はユーザー操作）。
type CheckoutUsecase struct {
	slots  repo.CartSlotRepository
	orders gateway.OrderGateway
	items  gateway.OrderItemGateway

	mu       sync.Mutex
	sessions map[int64]*model.CheckoutSession
}

// DI
func NewCheckoutUsecase(
	slots repo.CartSlotRepository,
	orders gateway.OrderGateway,
	items gateway.OrderItemGateway,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		slots:    slots,
		orders:   orders,
		items:    items,
		sessions: make(map[int64]*model.CheckoutSession),
	}
}

type CheckoutOutput struct {
	SessionID    string  `json:"session_id"`
	State        string  `json:"state"`
	OrderID      int64   `json:"order_id,omitempty"`
	TotalAmount  float64 `json:"total_amount"`
	ItemsCreated int     `json:"items_created"`
}

// CreateOrder はカートを読み、注文→明細の順でリモートに作る。
// 合計はこの時点のカートから1回だけ計算する（明細ごとに再計算しない）。
func (u *CheckoutUsecase) CreateOrder(ctx context.Context, userID int64) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := loadCartLines(ctx, u.slots, userID)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	if len(lines) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	total := Subtotal(lines)

	sess, err := u.begin(userID, lines, total)
	if err != nil {
		return CheckoutOutput{}, err
	}

	order, err := u.orders.Create(ctx, userID, total)
	if err != nil {
		u.transition(userID, model.CheckoutStateIdle)
		return CheckoutOutput{}, &OrderCreationError{Err: err}
	}
	if order.OrderID == 0 {
		//orderId無しは致命扱い。明細作成へ進まない。
		u.transition(userID, model.CheckoutStateIdle)
		return CheckoutOutput{}, &OrderCreationError{Err: errors.New("missing orderId in response")}
	}

	u.setOrder(userID, order.OrderID)

	created := 0
	for _, line := range lines {
		_, err := u.items.Create(ctx, model.OrderItem{
			OrderID:   order.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
		if err != nil {
			return CheckoutOutput{}, u.compensate(ctx, userID, order.OrderID, line.ProductID, created, err)
		}
		created++
	}

	u.transition(userID, model.CheckoutStatePlaced)

	return CheckoutOutput{
		SessionID:    sess.SessionID,
		State:        model.CheckoutStatePlaced.String(),
		OrderID:      order.OrderID,
		TotalAmount:  total,
		ItemsCreated: created,
	}, nil
}

// compensate は明細作成の失敗後に、作ったばかりの注文を1回だけ削除してみる。
// 削除も失敗したら注文は部分状態で残し、orderIdを保持して手動削除できるようにする。
func (u *CheckoutUsecase) compensate(ctx context.Context, userID int64, orderID int64, productID int64, created int, cause error) error {
	itemErr := &OrderItemCreationError{
		OrderID:      orderID,
		ProductID:    productID,
		ItemsCreated: created,
		Err:          cause,
	}

	if delErr := u.orders.Delete(ctx, orderID); delErr == nil {
		itemErr.OrderDeleted = true
		u.transition(userID, model.CheckoutStateIdle)
		return itemErr
	}

	u.transition(userID, model.CheckoutStatePlaced)
	return itemErr
}

// DeleteOrder は保持中の注文をリモートから消す。
// 成功してもカートは消さない（同じカートで再注文できるようにする）。
func (u *CheckoutUsecase) DeleteOrder(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orderID, ok := u.beginDelete(userID)
	if !ok {
		return NewHTTPError(http.StatusNotFound, "no placed order")
	}

	if err := u.orders.Delete(ctx, orderID); err != nil {
		//orderIdは保持したまま戻す。再試行は手動。
		u.transition(userID, model.CheckoutStatePlaced)
		return &OrderDeletionError{OrderID: orderID, Err: err}
	}

	u.Release(userID)
	return nil
}

// Session は現在の進行状態を返す（無ければIdle相当）。
func (u *CheckoutUsecase) Session(userID int64) (model.CheckoutSession, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok {
		return model.CheckoutSession{}, false
	}
	return *sess, true
}

// PlacedOrder は支払い対象（Placedな注文）を返す。
func (u *CheckoutUsecase) PlacedOrder(userID int64) (int64, float64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok || sess.State != model.CheckoutStatePlaced {
		return 0, 0, false
	}
	return sess.OrderID, sess.TotalAmount, true
}

// Release はセッションを破棄してIdleに戻す。
func (u *CheckoutUsecase) Release(userID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.sessions, userID)
}

// begin はIdleからSubmittingへ入る。進行中なら409。
func (u *CheckoutUsecase) begin(userID int64, lines []model.CartLine, total float64) (model.CheckoutSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if existing, ok := u.sessions[userID]; ok {
		if !existing.State.CanTransitionTo(model.CheckoutStateSubmitting) {
			return model.CheckoutSession{}, NewHTTPError(http.StatusConflict,
				"checkout already in progress: "+existing.State.String())
		}
	}

	sess := &model.CheckoutSession{
		SessionID:   uuid.NewString(),
		UserID:      userID,
		State:       model.CheckoutStateSubmitting,
		TotalAmount: total,
		Lines:       lines,
		UpdatedAt:   time.Now(),
	}
	u.sessions[userID] = sess
	return *sess, nil
}

func (u *CheckoutUsecase) setOrder(userID int64, orderID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok {
		return
	}
	sess.OrderID = orderID
	sess.State = model.CheckoutStateItemsSubmitting
	sess.UpdatedAt = time.Now()
}

// beginDelete はPlacedからDeletingへ入る。
func (u *CheckoutUsecase) beginDelete(userID int64) (int64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok || !sess.State.CanTransitionTo(model.CheckoutStateDeleting) {
		return 0, false
	}
	sess.State = model.CheckoutStateDeleting
	sess.UpdatedAt = time.Now()
	return sess.OrderID, true
}

func (u *CheckoutUsecase) transition(userID int64, next model.CheckoutState) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[userID]
	if !ok {
		return
	}

	if next == model.CheckoutStateIdle {
		//Idleはセッション無しで表す
		delete(u.sessions, userID)
		return
	}

	sess.State = next
	sess.UpdatedAt = time.Now()
}
