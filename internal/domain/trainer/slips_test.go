package trainer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

func boolPtr(v bool) *bool { return &v }

func TestAllSlipsCompleted(t *testing.T) {
	assert.False(t, trainer.AllSlipsCompleted(nil), "nil は判定不能として false")
	assert.False(t, trainer.AllSlipsCompleted([]entity.Slip{}), "空も false")
	assert.True(t, trainer.AllSlipsCompleted([]entity.Slip{{Completed: true}}))
	assert.False(t, trainer.AllSlipsCompleted([]entity.Slip{
		{Completed: true},
		{Completed: false},
	}), "1 枚でも未完了なら false")
}

func TestSummarizeSlips_集計と平坦化(t *testing.T) {
	slips := []entity.Slip{
		{
			SlipID: "slip-0",
			Tasks: []entity.Task{
				{Product: entity.Product{Code: "A"}, Completed: true, Found: boolPtr(true)},
				{Product: entity.Product{Code: "B"}, Completed: true, Found: boolPtr(false)},
			},
		},
		{
			SlipID: "slip-1",
			Tasks: []entity.Task{
				{Product: entity.Product{Code: "C"}, Completed: false, Found: nil},
			},
		},
	}

	sum := trainer.SummarizeSlips(slips)
	assert.Equal(t, 3, sum.TotalTasks)
	assert.Equal(t, 2, sum.CompletedTasks)
	assert.Equal(t, 1, sum.CorrectCount, "found=true のタスクだけ正答に数える")
	require.Len(t, sum.AllTasks, 3)
	assert.Equal(t, "A", sum.AllTasks[0].Product.Code, "伝票順・タスク順を保持する")
	assert.Equal(t, "B", sum.AllTasks[1].Product.Code)
	assert.Equal(t, "C", sum.AllTasks[2].Product.Code)
}

func TestSummarizeSlips_空入力(t *testing.T) {
	sum := trainer.SummarizeSlips(nil)
	assert.Equal(t, 0, sum.TotalTasks)
	assert.Empty(t, sum.AllTasks)
}
