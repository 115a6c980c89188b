package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultStock 在庫数が未設定の商品に適用する実効在庫。
// ブラウザ版の旧カタログデータには stock フィールドが無いため、その互換用。
const DefaultStock = 99

// Product はピッキング練習用カタログの商品(SKU)。
// Stock が nil の場合、実効在庫は DefaultStock として扱う。0 は売切れとして保持する。
type Product struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"` // 商品コード(一意)
	Name      string          `json:"name"`
	Location  string          `json:"location"` // 棚番(表示用)
	Price     decimal.Decimal `json:"price"`    // 単価(表示用)
	Stock     *int            `json:"stock,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// EffectiveStock は実効在庫を返す。Stock 未設定は DefaultStock。
func (p Product) EffectiveStock() int {
	if p.Stock == nil {
		return DefaultStock
	}
	return *p.Stock
}
