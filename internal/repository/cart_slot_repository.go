package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// カートスロット（1キー1blob）の永続化だけを約束。
// read-modify-write の調整はしない（多重書き込みは後勝ち）。
type CartSlotRepository interface {
	Load(ctx context.Context, key string) (string, error) // 無ければ ErrNotFound
	Save(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error // 無くてもエラーにしない
}
