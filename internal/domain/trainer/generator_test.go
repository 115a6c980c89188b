package trainer_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

// seededGenerator はシード固定の生成器を返す(テストを決定的にする)。
func seededGenerator(seed int64) *trainer.Generator {
	return trainer.NewGenerator(rand.New(rand.NewSource(seed)))
}

func product(code string, stock *int) entity.Product {
	return entity.Product{ID: "id-" + code, Code: code, Name: "商品 " + code, Stock: stock}
}

func catalog(n int, stockEach int) []entity.Product {
	products := make([]entity.Product, 0, n)
	for i := 0; i < n; i++ {
		s := stockEach
		products = append(products, product(fmt.Sprintf("P-%03d", i), &s))
	}
	return products
}

func TestRandomTask_数量は1から3かつ在庫以下(t *testing.T) {
	g := seededGenerator(1)
	products := catalog(5, 10)

	for i := 0; i < 200; i++ {
		task := g.RandomTask(products)
		require.NotNil(t, task)
		assert.GreaterOrEqual(t, task.Quantity, 1)
		assert.LessOrEqual(t, task.Quantity, trainer.MaxQuantity)
		assert.False(t, task.Completed, "生成直後は未完了")
		assert.Nil(t, task.Found, "生成直後は未回答")
	}
}

func TestRandomTask_在庫1なら数量は1(t *testing.T) {
	g := seededGenerator(2)
	one := 1
	products := []entity.Product{product("P-001", &one)}

	for i := 0; i < 50; i++ {
		task := g.RandomTask(products)
		require.NotNil(t, task)
		assert.Equal(t, 1, task.Quantity, "数量は在庫で頭打ちになる")
	}
}

func TestRandomTask_在庫未設定は実効在庫99として出題対象(t *testing.T) {
	g := seededGenerator(3)
	products := []entity.Product{product("P-001", nil)}

	task := g.RandomTask(products)
	require.NotNil(t, task, "stock 未設定の商品は実効在庫 99 として扱う")
}

func TestRandomTask_全商品在庫ゼロならNil(t *testing.T) {
	g := seededGenerator(4)
	zero := 0
	products := []entity.Product{product("P-001", &zero), product("P-002", &zero)}

	assert.Nil(t, g.RandomTask(products), "出題できる商品が無ければ nil")
	assert.Nil(t, g.RandomTask(nil), "空カタログでも nil")
}

func TestRandomTasks_台帳を持たないので同一商品が重複しうる(t *testing.T) {
	g := seededGenerator(5)
	one := 1
	products := []entity.Product{product("P-001", &one)}

	// 在庫 1 でも台帳を消費しないため、毎回同じ商品が出題される
	tasks := g.RandomTasks(products, 5)
	require.Len(t, tasks, 5)
	for _, task := range tasks {
		assert.Equal(t, "P-001", task.Product.Code)
	}
}

func TestRandomTasks_出題不能なら少ない件数を返す(t *testing.T) {
	g := seededGenerator(6)
	assert.Empty(t, g.RandomTasks(nil, 10), "商品が無ければ 0 件")
}

func TestTaskFromStock_台帳を減算する(t *testing.T) {
	g := seededGenerator(7)
	products := []entity.Product{product("P-001", intPtr(10))}
	remaining := map[string]int{"P-001": 10}
	used := map[string]bool{}

	task := g.TaskFromStock(products, remaining, used)
	require.NotNil(t, task)
	assert.Equal(t, 10-task.Quantity, remaining["P-001"], "生成した数量ぶん台帳が減る")
	assert.GreaterOrEqual(t, remaining["P-001"], 0, "台帳は負にならない")
}

func TestTaskFromStock_使用済みコードは候補から外れる(t *testing.T) {
	g := seededGenerator(8)
	products := []entity.Product{product("P-001", intPtr(5)), product("P-002", intPtr(5))}
	remaining := map[string]int{"P-001": 5, "P-002": 5}
	used := map[string]bool{"P-001": true}

	for i := 0; i < 20; i++ {
		task := g.TaskFromStock(products, remaining, map[string]bool{"P-001": true})
		require.NotNil(t, task)
		assert.Equal(t, "P-002", task.Product.Code, "used にあるコードは選ばれない")
		remaining["P-002"] = 5 // 台帳を戻して繰り返す
	}

	used["P-002"] = true
	assert.Nil(t, g.TaskFromStock(products, remaining, used), "候補が尽きたら nil")
}

func TestTaskFromStock_台帳未登録は実効在庫から開始(t *testing.T) {
	g := seededGenerator(9)
	products := []entity.Product{product("P-001", intPtr(2))}
	remaining := map[string]int{}

	task := g.TaskFromStock(products, remaining, map[string]bool{})
	require.NotNil(t, task)
	assert.LessOrEqual(t, task.Quantity, 2, "数量は実効在庫を超えない")
	assert.Equal(t, 2-task.Quantity, remaining["P-001"])
}

func TestSlips_枚数と採番(t *testing.T) {
	g := seededGenerator(10)
	slips := g.Slips(catalog(20, 10), 4, 3)

	require.Len(t, slips, 4, "指定枚数の伝票が生成される")
	for i, s := range slips {
		assert.Equal(t, fmt.Sprintf("slip-%d", i), s.SlipID)
		assert.Equal(t, i+1, s.SlipNumber, "伝票番号は 1 始まり")
		assert.False(t, s.Completed)
		assert.LessOrEqual(t, len(s.Tasks), 3)
	}
}

func TestSlips_伝票内で商品が重複しない(t *testing.T) {
	g := seededGenerator(11)
	slips := g.Slips(catalog(10, 50), 5, 4)

	for _, s := range slips {
		seen := map[string]bool{}
		for _, task := range s.Tasks {
			assert.False(t, seen[task.Product.Code],
				"同一伝票内に同じ商品 %s が重複してはならない", task.Product.Code)
			seen[task.Product.Code] = true
		}
	}
}

func TestSlips_伝票をまたいで初期在庫を超えない(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := seededGenerator(seed)
		products := catalog(6, 4) // 少ない在庫で枯渇させる
		slips := g.Slips(products, 8, 3)

		allocated := map[string]int{}
		for _, s := range slips {
			for _, task := range s.Tasks {
				allocated[task.Product.Code] += task.Quantity
			}
		}
		for code, total := range allocated {
			assert.LessOrEqual(t, total, 4,
				"seed=%d: 商品 %s の引当合計が初期在庫を超えた", seed, code)
		}
	}
}

func TestSlips_在庫枯渇時は空伝票を許容(t *testing.T) {
	g := seededGenerator(12)
	one := 1
	products := []entity.Product{product("P-001", &one)}

	slips := g.Slips(products, 3, 2)
	require.Len(t, slips, 3, "在庫が尽きても枚数は維持される")
	total := 0
	for _, s := range slips {
		total += len(s.Tasks)
	}
	assert.Equal(t, 1, total, "在庫 1 なのでタスクは全体で 1 件だけ")
}
