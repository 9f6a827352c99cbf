package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	"app/internal/gateway"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecase は商品一覧の取得（リモート商品サービスへの委譲）。
type ProductUsecase struct {
	products gateway.ProductGateway
}

// DI
func NewProductUsecase(products gateway.ProductGateway) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type ProductListOutput struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context) (ProductListOutput, error) {
	products, err := u.products.ListAll(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusBadGateway, "product service unavailable")
	}
	if products == nil {
		products = []model.Product{}
	}

	return ProductListOutput{Products: products, Total: len(products)}, nil
}
