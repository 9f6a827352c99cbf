package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	gw "app/internal/gateway"
	infra "app/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

// 1リクエスト記録して固定レスポンスを返すサーバー
func newRecordingServer(t *testing.T, status int, response string, rec *recordedRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Auth = r.Header.Get("Authorization")
		rec.Body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
}

func TestOrderHTTPGateway_Create(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK,
		`{"orderId":99,"userId":7,"totalAmount":"250.00","status":"pending"}`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	order, err := g.Create(context.Background(), 7, 250)
	assert.NoError(t, err)
	assert.Equal(t, int64(99), order.OrderID)
	assert.Equal(t, 250.0, order.TotalAmount.Float64())

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/create-Order", rec.Path)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body, &body))
	assert.Equal(t, float64(7), body["userId"])
	assert.Equal(t, 250.0, body["totalAmount"])
}

func TestOrderHTTPGateway_Create_ForwardsAuthorizationOnlyWithToken(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK, `{"orderId":1}`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	//トークン無し→ヘッダ無し
	_, err := g.Create(context.Background(), 7, 10)
	assert.NoError(t, err)
	assert.Empty(t, rec.Auth)

	//トークン有り→そのまま転送
	ctx := gw.WithToken(context.Background(), "Bearer token-123")
	_, err = g.Create(ctx, 7, 10)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-123", rec.Auth)
}

func TestOrderHTTPGateway_Delete(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK, `{"success":true}`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	err := g.Delete(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/delete-Order/42", rec.Path)
}

func TestOrderHTTPGateway_Delete_RejectedBySuccessFalse(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK, `{"success":false}`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	err := g.Delete(context.Background(), 42)
	assert.Error(t, err)
}

func TestOrderHTTPGateway_Delete_ErrorBodyDetails(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusInternalServerError, `{"details":"order is locked"}`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	err := g.Delete(context.Background(), 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order is locked")
}

func TestOrderHTTPGateway_ListByUser_BareArray(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK, `[{"orderId":1},{"orderId":2}]`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	orders, err := g.ListByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "/UserOrders/7", rec.Path)
}

func TestOrderHTTPGateway_ListByUser_WrappedObject(t *testing.T) {
	var rec recordedRequest
	srv := newRecordingServer(t, http.StatusOK, `{"allOrders":[{"orderId":1}]}`, &rec)
	defer srv.Close()

	g := infra.NewOrderHTTPGateway(infra.NewClient(srv.URL))

	orders, err := g.ListByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].OrderID)
}
