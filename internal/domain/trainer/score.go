// Package trainer はピッキング練習の純ロジック(ドメインサービス)。
// 出題・伝票生成・集計・履歴の移行と自己ベスト算出を、I/O なしの関数として提供する。
package trainer

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// BestScoreOption は BestScore の追加絞り込み条件。
type BestScoreOption struct {
	TimeLimit *int // timeAttack のとき、同じ制限時間(秒)の記録だけを比較する
}

// BestScore は userID と mode が一致する履歴の自己ベストを返す。該当がなければ nil。
// timeAttack で TimeLimit 指定時は、同一制限時間内で最も多く回答した TotalAnswered を
// ベストとみなす。それ以外は Score の最大値。同値のタイブレークは不要(最大値同士は等価)。
func BestScore(history []entity.HistoryEntry, userID, mode string, opt BestScoreOption) *int {
	var best *int
	for _, h := range history {
		if h.UserID != userID || h.Mode != mode {
			continue
		}
		v := h.Score
		if mode == entity.ModeTimeAttack && opt.TimeLimit != nil {
			if h.TimeLimit == nil || *h.TimeLimit != *opt.TimeLimit {
				continue
			}
			v = h.TotalAnswered
		}
		if best == nil || v > *best {
			val := v
			best = &val
		}
	}
	return best
}
