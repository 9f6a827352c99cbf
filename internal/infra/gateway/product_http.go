package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"app/internal/domain/model"
)

type ProductHTTPGateway struct {
	c *Client
}

// DI
func NewProductHTTPGateway(c *Client) *ProductHTTPGateway {
	return &ProductHTTPGateway{c: c}
}

func (g *ProductHTTPGateway) ListAll(ctx context.Context) ([]model.Product, error) {
	var list productList

	if err := g.c.doJSON(ctx, http.MethodGet, "AllProducts", nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

// productList は素の配列・{data: [...]}・{allProducts: [...]} の3形を受ける。
type productList []model.Product

func (l *productList) UnmarshalJSON(b []byte) error {
	var bare []model.Product
	if err := json.Unmarshal(b, &bare); err == nil {
		*l = bare
		return nil
	}

	var wrapped struct {
		Data        []model.Product `json:"data"`
		AllProducts []model.Product `json:"allProducts"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	if wrapped.Data != nil {
		*l = wrapped.Data
		return nil
	}
	*l = wrapped.AllProducts
	return nil
}
