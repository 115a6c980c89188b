package entity

// Task は「この商品をこの数量ピックする」1 問分の練習単位。
// Completed / Found は回答時に UI 側で更新される。生成後この層からは変更しない。
type Task struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Completed bool    `json:"completed"`
	Found     *bool   `json:"found"` // nil = 未回答
}

// Slip は複数タスクをまとめた擬似出荷伝票。実倉庫のピッキングリストを模す。
type Slip struct {
	SlipID     string `json:"slipId"`
	SlipNumber int    `json:"slipNumber"` // 1 始まり
	Tasks      []Task `json:"tasks"`
	Completed  bool   `json:"completed"`
}

// SlipsSummary は伝票群の集計結果。AllTasks は全伝票のタスクを伝票順に平坦化したもの。
type SlipsSummary struct {
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	CorrectCount   int    `json:"correctCount"`
	AllTasks       []Task `json:"allTasks"`
}
