package trainer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
)

// MaxQuantity 1 タスクあたりの最大ピック数量。
const MaxQuantity = 3

// Generator は乱数源を持つタスク・伝票の生成器。
// テストではシード固定の *rand.Rand を渡して決定的に動かす。
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator は生成器を構築する。rnd が nil の場合は時刻シードの乱数源を使う。
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// RandomTask は実効在庫が 1 以上の商品から一様ランダムに 1 件選び、
// 数量 = min(1〜MaxQuantity の乱数, 実効在庫) のタスクを返す。候補がなければ nil。
// 在庫台帳は消費しないため、連続で呼ぶと同じ商品の在庫を重複して引き当てうる。
// 在庫を保存する伝票モードは TaskFromStock を使うこと。
func (g *Generator) RandomTask(products []entity.Product) *entity.Task {
	candidates := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.EffectiveStock() > 0 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	p := candidates[g.rnd.Intn(len(candidates))]
	qty := g.rnd.Intn(MaxQuantity) + 1
	if s := p.EffectiveStock(); qty > s {
		qty = s
	}
	return &entity.Task{Product: p, Quantity: qty, Completed: false, Found: nil}
}

// RandomTasks は RandomTask を count 回呼び、生成できた分だけ順に返す。
// 全商品の在庫が 0 の場合は count 件未満(0 件もありうる)になる。
func (g *Generator) RandomTasks(products []entity.Product, count int) []entity.Task {
	tasks := make([]entity.Task, 0, count)
	for i := 0; i < count; i++ {
		if t := g.RandomTask(products); t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks
}

// TaskFromStock は残在庫台帳 remaining と伝票内の使用済みコード used を考慮して
// タスクを 1 件生成する。台帳に無い商品は実効在庫を初期値とみなす。候補が無ければ nil。
// 生成した数量ぶん remaining をその場で減算する。この副作用が伝票間の在庫保存を担う。
func (g *Generator) TaskFromStock(products []entity.Product, remaining map[string]int, used map[string]bool) *entity.Task {
	candidates := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if used[p.Code] {
			continue
		}
		if stockFor(p, remaining) > 0 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	p := candidates[g.rnd.Intn(len(candidates))]
	stock := stockFor(p, remaining)
	qty := g.rnd.Intn(MaxQuantity) + 1
	if qty > stock {
		qty = stock
	}
	remaining[p.Code] = stock - qty
	return &entity.Task{Product: p, Quantity: qty, Completed: false, Found: nil}
}

// Slips は slipCount 枚の伝票を生成する。台帳は全商品の実効在庫で初期化し、
// 全伝票で共有する。各伝票は最大 itemsPerSlip 件で、同一伝票内に同じ商品は入らない。
// 在庫が尽きると伝票のタスクは itemsPerSlip 件未満(0 件もありうる)になる。
func (g *Generator) Slips(products []entity.Product, slipCount, itemsPerSlip int) []entity.Slip {
	remaining := make(map[string]int, len(products))
	for _, p := range products {
		remaining[p.Code] = p.EffectiveStock()
	}
	slips := make([]entity.Slip, 0, slipCount)
	for i := 0; i < slipCount; i++ {
		used := make(map[string]bool, itemsPerSlip)
		tasks := make([]entity.Task, 0, itemsPerSlip)
		for j := 0; j < itemsPerSlip; j++ {
			t := g.TaskFromStock(products, remaining, used)
			if t == nil {
				break
			}
			used[t.Product.Code] = true
			tasks = append(tasks, *t)
		}
		slips = append(slips, entity.Slip{
			SlipID:     fmt.Sprintf("slip-%d", i),
			SlipNumber: i + 1,
			Tasks:      tasks,
			Completed:  false,
		})
	}
	return slips
}

func stockFor(p entity.Product, remaining map[string]int) int {
	if stock, ok := remaining[p.Code]; ok {
		return stock
	}
	return p.EffectiveStock()
}
