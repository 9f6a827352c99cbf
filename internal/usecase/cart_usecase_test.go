package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// =====================
// インメモリのスロット偽物（read-modify-writeの流れを素直に通す）
// =====================

type slotStoreFake struct {
	m       map[string]string
	loadErr error
}

func newSlotStoreFake() *slotStoreFake {
	return &slotStoreFake{m: map[string]string{}}
}

func (f *slotStoreFake) Load(ctx context.Context, key string) (string, error) {
	if f.loadErr != nil {
		return "", f.loadErr
	}
	v, ok := f.m[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (f *slotStoreFake) Save(ctx context.Context, key string, value string) error {
	f.m[key] = value
	return nil
}

func (f *slotStoreFake) Delete(ctx context.Context, key string) error {
	delete(f.m, key)
	return nil
}

func cartKey(userID int64) string {
	return fmt.Sprintf("%s%d", model.CartSlotPrefix, userID)
}

func seedCart(f *slotStoreFake, userID int64, blob string) {
	f.m[cartKey(userID)] = blob
}

// =====================
// CartUsecase
// =====================

func TestCartUsecase_AddToCart_SameProductMergesQuantity(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	uc := usecase.NewCartUsecase(slots)

	in := usecase.AddCartLineInput{ProductID: 1, Title: "A", Price: model.Price(100), Quantity: 2}

	_, err := uc.AddToCart(ctx, 7, in)
	assert.NoError(t, err)

	out, err := uc.AddToCart(ctx, 7, usecase.AddCartLineInput{ProductID: 1, Title: "A", Price: model.Price(100), Quantity: 3})
	assert.NoError(t, err)

	//2行にならず数量加算される
	assert.Len(t, out.Lines, 1)
	assert.Equal(t, int64(5), out.Lines[0].Quantity)
	assert.Equal(t, int64(5), out.TotalCount)
}

func TestCartUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	uc := usecase.NewCartUsecase(newSlotStoreFake())

	_, err := uc.AddToCart(context.Background(), 7, usecase.AddCartLineInput{ProductID: 1, Quantity: 0})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
}

func TestCartUsecase_RemoveFromCart_IsTotal(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	seedCart(slots, 7, `[{"productId":1,"price":100,"quantity":2},{"productId":2,"price":50,"quantity":1}]`)
	uc := usecase.NewCartUsecase(slots)

	out, err := uc.RemoveFromCart(ctx, 7, 1)
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 1)
	assert.Equal(t, int64(2), out.Lines[0].ProductID)
}

func TestCartUsecase_RemoveFromCart_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	seedCart(slots, 7, `[{"productId":1,"price":100,"quantity":2}]`)
	uc := usecase.NewCartUsecase(slots)

	out, err := uc.RemoveFromCart(ctx, 7, 999)
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 1)
}

func TestCartUsecase_UpdateQuantity_FloorsAtOne(t *testing.T) {
	ctx := context.Background()

	for _, qty := range []int64{0, -5} {
		slots := newSlotStoreFake()
		seedCart(slots, 7, `[{"productId":1,"price":100,"quantity":3}]`)
		uc := usecase.NewCartUsecase(slots)

		out, err := uc.UpdateQuantity(ctx, 7, 1, qty)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.Lines[0].Quantity)
	}
}

func TestCartUsecase_UpdateQuantity_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	seedCart(slots, 7, `[{"productId":1,"price":100,"quantity":3}]`)
	uc := usecase.NewCartUsecase(slots)

	out, err := uc.UpdateQuantity(ctx, 7, 999, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.Lines[0].Quantity)
}

func TestCartUsecase_ClearCart_IsTotal(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	seedCart(slots, 7, `[{"productId":1,"price":100,"quantity":3}]`)
	uc := usecase.NewCartUsecase(slots)

	err := uc.ClearCart(ctx, 7)
	assert.NoError(t, err)

	out, err := uc.GetCart(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 0)
	assert.Equal(t, int64(0), out.TotalCount)
}

func TestCartUsecase_GetCart_CorruptBlobFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	seedCart(slots, 7, `{broken`)
	uc := usecase.NewCartUsecase(slots)

	out, err := uc.GetCart(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, out.Lines, 0)
}

func TestCartUsecase_GetCart_StorageErrorIs500(t *testing.T) {
	slots := newSlotStoreFake()
	slots.loadErr = errors.New("boom")
	uc := usecase.NewCartUsecase(slots)

	_, err := uc.GetCart(context.Background(), 7)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, he.Status)
}

func TestCartUsecase_Subtotal_MixedPriceRepresentations(t *testing.T) {
	ctx := context.Background()
	slots := newSlotStoreFake()
	//価格が文字列でも数値でも合計は同じに出る
	seedCart(slots, 7, `[{"productId":1,"price":"100.00","quantity":2},{"productId":2,"price":50,"quantity":1}]`)
	uc := usecase.NewCartUsecase(slots)

	out, err := uc.GetCart(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, 250.0, out.Subtotal)
	assert.Equal(t, int64(3), out.TotalCount)
	assert.Equal(t, 200.0, out.Lines[0].LineTotal)
	assert.Equal(t, 50.0, out.Lines[1].LineTotal)
}
