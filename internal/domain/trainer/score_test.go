package trainer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/entity"
	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

const (
	testUserID  = "user-1"
	otherUserID = "user-2"
)

func intPtr(v int) *int { return &v }

func entry(userID, mode string, score, total int, timeLimit *int) entity.HistoryEntry {
	return entity.HistoryEntry{
		UserID:        userID,
		Mode:          mode,
		Score:         score,
		TotalAnswered: total,
		TimeLimit:     timeLimit,
		PlayedAt:      time.Now(),
	}
}

func TestBestScore_通常モードは最大スコア(t *testing.T) {
	history := []entity.HistoryEntry{
		entry(testUserID, entity.ModeNormal, 7, 10, nil),
		entry(testUserID, entity.ModeNormal, 9, 10, nil),
		entry(testUserID, entity.ModeNormal, 4, 10, nil),
		entry(otherUserID, entity.ModeNormal, 10, 10, nil), // 他ユーザーは対象外
		entry(testUserID, entity.ModeTimeAttack, 30, 30, intPtr(60)),
	}

	best := trainer.BestScore(history, testUserID, entity.ModeNormal, trainer.BestScoreOption{})
	require.NotNil(t, best)
	assert.Equal(t, 9, *best, "user-1 の normal の最大スコアは 9")
}

func TestBestScore_該当なしはNil(t *testing.T) {
	history := []entity.HistoryEntry{
		entry(otherUserID, entity.ModeNormal, 10, 10, nil),
	}
	assert.Nil(t, trainer.BestScore(history, testUserID, entity.ModeNormal, trainer.BestScoreOption{}),
		"一致する履歴が無ければ nil")
	assert.Nil(t, trainer.BestScore(nil, testUserID, entity.ModeNormal, trainer.BestScoreOption{}),
		"空履歴でも nil")
}

func TestBestScore_タイムアタックは制限時間一致の回答数で比較(t *testing.T) {
	history := []entity.HistoryEntry{
		entry(testUserID, entity.ModeTimeAttack, 25, 28, intPtr(60)),
		entry(testUserID, entity.ModeTimeAttack, 30, 33, intPtr(60)),
		entry(testUserID, entity.ModeTimeAttack, 50, 55, intPtr(120)), // 制限時間が違うので対象外
		entry(testUserID, entity.ModeTimeAttack, 40, 44, nil),         // 制限時間なしも対象外
	}

	best := trainer.BestScore(history, testUserID, entity.ModeTimeAttack,
		trainer.BestScoreOption{TimeLimit: intPtr(60)})
	require.NotNil(t, best)
	assert.Equal(t, 33, *best, "60 秒の記録のうち最大の TotalAnswered を返す")
}

func TestBestScore_タイムアタックで制限時間未指定ならスコア比較(t *testing.T) {
	history := []entity.HistoryEntry{
		entry(testUserID, entity.ModeTimeAttack, 25, 28, intPtr(60)),
		entry(testUserID, entity.ModeTimeAttack, 50, 55, intPtr(120)),
	}

	best := trainer.BestScore(history, testUserID, entity.ModeTimeAttack, trainer.BestScoreOption{})
	require.NotNil(t, best)
	assert.Equal(t, 50, *best, "TimeLimit 指定なしのときは Score の最大値")
}

// 返り値が必ずいずれかのエントリ由来の値であること(スペックの性質)。
func TestBestScore_返り値はいずれかのエントリの値(t *testing.T) {
	history := []entity.HistoryEntry{
		entry(testUserID, entity.ModeNormal, 3, 10, nil),
		entry(testUserID, entity.ModeNormal, 8, 10, nil),
	}
	best := trainer.BestScore(history, testUserID, entity.ModeNormal, trainer.BestScoreOption{})
	require.NotNil(t, best)
	found := false
	for _, h := range history {
		if h.Score == *best {
			found = true
		}
		assert.LessOrEqual(t, h.Score, *best, "どのエントリのスコアもベストを超えない")
	}
	assert.True(t, found, "ベストは実在するエントリのスコア")
}
