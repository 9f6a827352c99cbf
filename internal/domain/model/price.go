package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price は単価。
// バックエンドが数値と数値文字列を混在して返すため、両方を受け付ける。
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}

	//文字列で来た場合はパースする
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", raw, err)
		}
		*p = Price(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

// 送信時は常に数値で出す
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

func (p Price) Float64() float64 {
	return float64(p)
}
