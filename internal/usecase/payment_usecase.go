package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/domain/model"
	"app/internal/gateway"
	repo "app/internal/repository"
)

// PlacedOrderSource は支払い対象（Placedな注文）の照会先。
type PlacedOrderSource interface {
	PlacedOrder(userID int64) (orderID int64, amount float64, ok bool)
	Release(userID int64)
}

// PaymentUsecase は電話番号を正規化してSTK Pushを1回発行する。
// 発行が受理されたらカートを空にしてセッションを解放する
// （支払い完了の確認はサーバー側コールバックの仕事で、ここではやらない）。
type PaymentUsecase struct {
	checkout PlacedOrderSource
	slots    repo.CartSlotRepository
	payments gateway.PaymentGateway
}

// DI
func NewPaymentUsecase(
	checkout PlacedOrderSource,
	slots repo.CartSlotRepository,
	payments gateway.PaymentGateway,
) *PaymentUsecase {
	return &PaymentUsecase{
		checkout: checkout,
		slots:    slots,
		payments: payments,
	}
}

var (
	phoneCanonical = regexp.MustCompile(`^254\d{9}$`)
	phoneMobile07  = regexp.MustCompile(`^07\d{8}$`)
	phoneMobile01  = regexp.MustCompile(`^01\d{8}$`)
)

// FormatPhoneNumber はSafaricom番号を254形式へ正規化する。
// 受ける形は 2547XXXXXXXX / 07XXXXXXXX / 01XXXXXXXX（先頭+は1つだけ剥がす）。
func FormatPhoneNumber(input string) (string, error) {
	phone := strings.TrimSpace(input)
	phone = strings.TrimPrefix(phone, "+")

	switch {
	case phoneCanonical.MatchString(phone):
		return phone, nil
	case phoneMobile07.MatchString(phone), phoneMobile01.MatchString(phone):
		return "254" + phone[1:], nil
	}

	return "", ErrInvalidPhoneFormat
}

type PaymentOutput struct {
	MerchantRequestID string `json:"merchant_request_id"`
	CheckoutRequestID string `json:"checkout_request_id"`
	CustomerMessage   string `json:"customer_message"`
}

func (u *PaymentUsecase) InitiateSTKPush(ctx context.Context, userID int64, rawPhone string) (PaymentOutput, error) {
	if userID <= 0 {
		return PaymentOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orderID, amount, ok := u.checkout.PlacedOrder(userID)
	if !ok {
		return PaymentOutput{}, NewHTTPError(http.StatusConflict, "no placed order")
	}
	if amount <= 0 {
		return PaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid amount")
	}

	//検証で弾ければネットワーク往復なしで返す
	phone, err := FormatPhoneNumber(rawPhone)
	if err != nil {
		return PaymentOutput{}, err
	}

	res, err := u.payments.InitiateSTKPush(ctx, model.STKPushRequest{
		OrderID:     orderID,
		PhoneNumber: phone,
		Amount:      amount,
	})
	if err != nil {
		return PaymentOutput{}, &PaymentInitiationError{Err: err}
	}

	if !res.Accepted() {
		desc := res.ResponseDescription
		if desc == "" {
			desc = "payment request was rejected"
		}
		return PaymentOutput{}, &PaymentInitiationError{Description: desc}
	}

	//受理できたのでカートを空にしてセッションを解放する。
	//ここでカートを消せなくても受理自体は成立しているので続行する。
	_ = u.slots.Delete(ctx, slotKey(userID))
	u.checkout.Release(userID)

	return PaymentOutput{
		MerchantRequestID: res.MerchantRequestID,
		CheckoutRequestID: res.CheckoutRequestID,
		CustomerMessage:   res.CustomerMessage,
	}, nil
}
