package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"app/internal/domain/model"
	infra "app/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
)

func TestPaymentHTTPGateway_InitiateSTKPush(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK,
		`{"MerchantRequestID":"m-1","CheckoutRequestID":"c-1","ResponseCode":"0","ResponseDescription":"Accepted","CustomerMessage":"Check your phone"}`, &rec)
	defer srv.Close()

	g := infra.NewPaymentHTTPGateway(infra.NewClient(srv.URL))

	res, err := g.InitiateSTKPush(context.Background(), model.STKPushRequest{
		OrderID:     99,
		PhoneNumber: "254712345678",
		Amount:      250,
	})
	assert.NoError(t, err)
	assert.True(t, res.Accepted())
	assert.Equal(t, "m-1", res.MerchantRequestID)
	assert.Equal(t, "Check your phone", res.CustomerMessage)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/initiate-payment", rec.Path)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body, &body))
	assert.Equal(t, float64(99), body["orderId"])
	assert.Equal(t, "254712345678", body["phoneNumber"])
	assert.Equal(t, float64(250), body["amount"])
}

func TestPaymentHTTPGateway_InitiateSTKPush_RejectionCodePassesThrough(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK,
		`{"ResponseCode":"1","ResponseDescription":"Insufficient funds"}`, &rec)
	defer srv.Close()

	g := infra.NewPaymentHTTPGateway(infra.NewClient(srv.URL))

	res, err := g.InitiateSTKPush(context.Background(), model.STKPushRequest{OrderID: 1, PhoneNumber: "254712345678", Amount: 10})
	assert.NoError(t, err)
	assert.False(t, res.Accepted())
	assert.Equal(t, "Insufficient funds", res.ResponseDescription)
}
