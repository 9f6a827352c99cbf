package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// スロット1枠のblobをread-modify-writeで書き換える。
// 書き込みごとに即時永続化する。多重書き込みの調整はしない（後勝ち）。
type CartUsecase struct {
	slots repo.CartSlotRepository
}

// DI
func NewCartUsecase(slots repo.CartSlotRepository) *CartUsecase {
	return &CartUsecase{slots: slots}
}

type CartLineResponse struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalCount int64              `json:"totalCount"`
	Subtotal   float64            `json:"subtotal"`
}

type AddCartLineInput struct {
	ProductID int64
	Title     string
	Image     string
	Price     model.Price
	Quantity  int64
}

func slotKey(userID int64) string {
	return fmt.Sprintf("%s%d", model.CartSlotPrefix, userID)
}

// loadCartLines はスロットを読む。
// スロットが無い・中身が壊れている場合は空カート扱いにする（エラーにしない）。
func loadCartLines(ctx context.Context, slots repo.CartSlotRepository, userID int64) ([]model.CartLine, error) {
	blob, err := slots.Load(ctx, slotKey(userID))
	if errors.Is(err, repo.ErrNotFound) {
		return []model.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}
	return model.DecodeCartLines(blob), nil
}

func (u *CartUsecase) saveCartLines(ctx context.Context, userID int64, lines []model.CartLine) error {
	blob, err := model.EncodeCartLines(lines)
	if err != nil {
		return err
	}
	return u.slots.Save(ctx, slotKey(userID), blob)
}

// GetCart はカート取得（無ければ空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := loadCartLines(ctx, u.slots, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return buildCartResponse(lines), nil
}

// AddToCart はカートに追加（同一商品は数量加算で行を増やさない）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartLineInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	lines, err := loadCartLines(ctx, u.slots, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == in.ProductID {
			lines[i].Quantity += in.Quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.CartLine{
			ProductID: in.ProductID,
			Title:     in.Title,
			Image:     in.Image,
			Price:     in.Price,
			Quantity:  in.Quantity,
		})
	}

	if err := u.saveCartLines(ctx, userID, lines); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return buildCartResponse(lines), nil
}

// UpdateQuantity は数量を max(1, qty) に設定。対象が無ければ何もしない。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID int64, productID int64, qty int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	lines, err := loadCartLines(ctx, u.slots, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	//数量は1未満にしない
	if qty < 1 {
		qty = 1
	}

	changed := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = qty
			changed = true
			break
		}
	}

	if changed {
		if err := u.saveCartLines(ctx, userID, lines); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
		}
	}

	return buildCartResponse(lines), nil
}

// RemoveFromCart は行を落とす。対象が無ければ何もしない。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, userID int64, productID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	lines, err := loadCartLines(ctx, u.slots, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	kept := make([]model.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}

	if len(kept) != len(lines) {
		if err := u.saveCartLines(ctx, userID, kept); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
		}
	}

	return buildCartResponse(kept), nil
}

// ClearCart はスロットごと削除。
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.slots.Delete(ctx, slotKey(userID)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return nil
}

// ========== View-Model（毎回再計算。キャッシュしない） ==========

func TotalItemCount(lines []model.CartLine) int64 {
	var count int64 = 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

func Subtotal(lines []model.CartLine) float64 {
	var total float64 = 0
	for _, line := range lines {
		total += float64(line.Quantity) * line.Price.Float64()
	}
	return total
}

func buildCartResponse(lines []model.CartLine) CartResponse {
	respLines := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		respLines = append(respLines, CartLineResponse{
			ProductID: line.ProductID,
			Title:     line.Title,
			Image:     line.Image,
			Price:     line.Price.Float64(),
			Quantity:  line.Quantity,
			LineTotal: float64(line.Quantity) * line.Price.Float64(),
		})
	}

	return CartResponse{
		Lines:      respLines,
		TotalCount: TotalItemCount(lines),
		Subtotal:   Subtotal(lines),
	}
}
