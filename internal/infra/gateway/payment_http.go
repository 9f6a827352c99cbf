package gateway

import (
	"context"
	"net/http"

	"app/internal/domain/model"
)

type PaymentHTTPGateway struct {
	c *Client
}

// DI
func NewPaymentHTTPGateway(c *Client) *PaymentHTTPGateway {
	return &PaymentHTTPGateway{c: c}
}

// STK Push発行の1往復。受理/拒否の判定は呼び出し側がResponseCodeで行う。
func (g *PaymentHTTPGateway) InitiateSTKPush(ctx context.Context, req model.STKPushRequest) (model.STKPushResponse, error) {
	var res model.STKPushResponse

	if err := g.c.doJSON(ctx, http.MethodPost, "initiate-payment", req, &res); err != nil {
		return model.STKPushResponse{}, err
	}

	return res, nil
}
