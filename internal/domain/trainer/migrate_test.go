package trainer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

func TestMigrateHistory_モード未設定をNormalに補完(t *testing.T) {
	history := []entity.HistoryEntry{
		{UserID: testUserID, Mode: "", Score: 5},
		{UserID: testUserID, Mode: entity.ModeTimeAttack, Score: 20},
	}

	out := trainer.MigrateHistory(history)
	require.Len(t, out, 2)
	assert.Equal(t, entity.ModeNormal, out[0].Mode, "空モードは normal に補完される")
	assert.Equal(t, entity.ModeTimeAttack, out[1].Mode, "設定済みモードはそのまま")
	assert.Equal(t, 5, out[0].Score, "他フィールドは変更しない")

	// 非破壊: 入力は変わらない
	assert.Equal(t, "", history[0].Mode)
}

func TestMigrateHistory_冪等(t *testing.T) {
	history := []entity.HistoryEntry{{UserID: testUserID, Mode: ""}}
	once := trainer.MigrateHistory(history)
	twice := trainer.MigrateHistory(once)
	assert.Equal(t, once, twice, "f(f(x)) == f(x)")
}

func TestMigrateProducts_在庫未設定をデフォルトに補完(t *testing.T) {
	zero := 0
	products := []entity.Product{
		{Code: "A-001", Name: "ネジ M4"},
		{Code: "A-002", Name: "ワッシャー", Stock: &zero},
	}

	out := trainer.MigrateProducts(products)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].Stock)
	assert.Equal(t, entity.DefaultStock, *out[0].Stock, "未設定は 99 に補完される")
	require.NotNil(t, out[1].Stock)
	assert.Equal(t, 0, *out[1].Stock, "在庫 0 は売切れとして保持される")

	// 非破壊: 入力は変わらない
	assert.Nil(t, products[0].Stock)
}

func TestMigrateProducts_冪等(t *testing.T) {
	products := []entity.Product{{Code: "A-001"}}
	once := trainer.MigrateProducts(products)
	twice := trainer.MigrateProducts(once)
	assert.Equal(t, once, twice)
}

func TestTrimHistory_上限以下はそのまま(t *testing.T) {
	history := make([]entity.HistoryEntry, trainer.HistoryLimit)
	out := trainer.TrimHistory(history)
	assert.Len(t, out, trainer.HistoryLimit)
}

func TestTrimHistory_超過分は古い方から破棄(t *testing.T) {
	history := make([]entity.HistoryEntry, trainer.HistoryLimit+30)
	for i := range history {
		history[i].Score = i
	}

	out := trainer.TrimHistory(history)
	require.Len(t, out, trainer.HistoryLimit, "長さは min(|H|, 500)")
	assert.Equal(t, 30, out[0].Score, "先頭は元の 31 件目(古い 30 件を破棄)")
	assert.Equal(t, len(history)-1, out[len(out)-1].Score, "末尾(最新)は保持される")
	// 保持した範囲の順序はそのまま
	for i := 1; i < len(out); i++ {
		assert.Equal(t, out[i-1].Score+1, out[i].Score)
	}
}
