package trainer

import "github.com/wms-dojo/picking-trainer-api/internal/domain/entity"

// AllSlipsCompleted は全伝票の completed が真のとき true を返す。
// 伝票が無い場合は「完了と判定できるデータが無い」ため false。
func AllSlipsCompleted(slips []entity.Slip) bool {
	if len(slips) == 0 {
		return false
	}
	for _, s := range slips {
		if !s.Completed {
			return false
		}
	}
	return true
}

// SummarizeSlips は全伝票のタスクを伝票順に平坦化し、総数・完了数・正答数を集計する。
// 読み取りのみで入力は変更しない。
func SummarizeSlips(slips []entity.Slip) entity.SlipsSummary {
	sum := entity.SlipsSummary{AllTasks: []entity.Task{}}
	for _, s := range slips {
		for _, t := range s.Tasks {
			sum.AllTasks = append(sum.AllTasks, t)
			sum.TotalTasks++
			if t.Completed {
				sum.CompletedTasks++
			}
			if t.Found != nil && *t.Found {
				sum.CorrectCount++
			}
		}
	}
	return sum
}
