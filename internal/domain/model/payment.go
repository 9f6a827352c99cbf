package model

// STKPushAcceptedCode は「リクエスト受理」を示す番兵値。
// 支払い完了ではない（完了確認はサーバー側コールバックの仕事）。
const STKPushAcceptedCode = "0"

type STKPushRequest struct {
	OrderID     int64   `json:"orderId"`
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
}

type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

func (r STKPushResponse) Accepted() bool {
	return r.ResponseCode == STKPushAcceptedCode
}
