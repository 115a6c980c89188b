package trainer

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// HistoryLimit 保持する練習履歴の上限件数。超過分は古い方から破棄する。
const HistoryLimit = 500

// MigrateHistory は mode 未設定のレガシー履歴に normal を補完した新しいスライスを返す。
// 他のフィールドはそのまま。入力は変更しない。再適用しても結果は変わらない(冪等)。
func MigrateHistory(history []entity.HistoryEntry) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, len(history))
	for i, h := range history {
		if h.Mode == "" {
			h.Mode = entity.ModeNormal
		}
		out[i] = h
	}
	return out
}

// MigrateProducts は stock 未設定のレガシー商品に DefaultStock を補完した新しいスライスを返す。
// stock=0 は売切れとしてそのまま保持する。入力は変更しない(冪等)。
func MigrateProducts(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	for i, p := range products {
		if p.Stock == nil {
			stock := entity.DefaultStock
			p.Stock = &stock
		}
		out[i] = p
	}
	return out
}

// TrimHistory は履歴が HistoryLimit を超えている場合に新しい方から HistoryLimit 件だけ
// 残したスライスを返す。追記順(=時系列)は保持する。超えていなければそのまま返す。
func TrimHistory(history []entity.HistoryEntry) []entity.HistoryEntry {
	if len(history) <= HistoryLimit {
		return history
	}
	return history[len(history)-HistoryLimit:]
}
