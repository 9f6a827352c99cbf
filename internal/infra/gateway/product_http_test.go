package gateway_test

import (
	"context"
	"net/http"
	"testing"

	infra "app/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
)

// レスポンス形は3通り（素の配列 / {data} / {allProducts}）が観測されている
func TestProductHTTPGateway_ListAll_AllShapes(t *testing.T) {
	shapes := []string{
		`[{"productId":1,"title":"A","price":"19.99"}]`,
		`{"data":[{"productId":1,"title":"A","price":19.99}]}`,
		`{"allProducts":[{"productId":1,"title":"A","price":19.99}]}`,
	}

	for _, shape := range shapes {
		var rec recordedRequest
		srv := newRecordingServer(t, http.StatusOK, shape, &rec)

		g := infra.NewProductHTTPGateway(infra.NewClient(srv.URL))

		products, err := g.ListAll(context.Background())
		assert.NoError(t, err, shape)
		assert.Len(t, products, 1, shape)
		assert.Equal(t, int64(1), products[0].ProductID, shape)
		assert.Equal(t, 19.99, products[0].Price.Float64(), shape)
		assert.Equal(t, "/AllProducts", rec.Path)

		srv.Close()
	}
}
