package model

import "encoding/json"

// スロットキーは "cart:<userID>" 形式
const CartSlotPrefix = "cart:"

// CartLine はカートの1行。
// title/image/price は追加時点のスナップショット（再取得しない）。
// productId はカート内で一意（同一商品は数量加算で1行に畳む）。
type CartLine struct {
	ProductID int64  `json:"productId"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Price     Price  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// EncodeCartLines はスロットへ書き込むblobを作る。
func EncodeCartLines(lines []CartLine) (string, error) {
	if lines == nil {
		lines = []CartLine{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeCartLines はスロットのblobを読む。
// 壊れていた場合は空カート扱いにする（エラーにはしない）。
func DecodeCartLines(blob string) []CartLine {
	var lines []CartLine
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		return []CartLine{}
	}
	if lines == nil {
		return []CartLine{}
	}
	return lines
}
