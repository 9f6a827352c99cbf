package model

import "time"

// 1ユーザーのカートを1行のシリアライズ済みblobで持つ。
// トランザクションもスキーマバージョンも持たない素朴なKV。
type CartSlot struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
