package trainer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms-dojo/picking-trainer-api/internal/domain/trainer"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1分5秒", trainer.FormatDuration(65000))
	assert.Equal(t, "45秒", trainer.FormatDuration(45000))
	assert.Equal(t, "0秒", trainer.FormatDuration(0))
	assert.Equal(t, "59秒", trainer.FormatDuration(59999), "秒は切り捨て")
	assert.Equal(t, "10分0秒", trainer.FormatDuration(600000))
}

func TestFormatDateTime(t *testing.T) {
	// ローカルタイムゾーンで組み立てることで実行環境に依存しない
	ts := time.Date(2025, 3, 7, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "2025/3/7 9:05", trainer.FormatDateTime(ts),
		"月・日・時はゼロ埋めせず、分だけ 2 桁")

	ts = time.Date(2025, 11, 23, 18, 40, 0, 0, time.Local)
	assert.Equal(t, "2025/11/23 18:40", trainer.FormatDateTime(ts))
}

func TestFormatDate_ISO文字列(t *testing.T) {
	ts := time.Date(2024, 12, 1, 23, 8, 0, 0, time.Local)
	out, err := trainer.FormatDate(ts.Format(time.RFC3339))
	require.NoError(t, err)
	assert.Equal(t, "2024/12/1 23:08", out)
}

func TestFormatDate_不正な入力はエラー(t *testing.T) {
	_, err := trainer.FormatDate("昨日のどこか")
	assert.Error(t, err)
}

func TestEscapeHTML(t *testing.T) {
	out := trainer.EscapeHTML(`<b>"x"</b>`)
	assert.Equal(t, "&lt;b&gt;&quot;x&quot;&lt;/b&gt;", out)
	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.NotContains(t, out, `"`)

	assert.Equal(t, "A&amp;B", trainer.EscapeHTML("A&B"))
	assert.Equal(t, "it&#39;s", trainer.EscapeHTML("it's"))
	assert.Equal(t, "ネジ M4", trainer.EscapeHTML("ネジ M4"), "特殊文字なしはそのまま")
}

func TestEscapeHTML_既にエスケープ済みでも再エスケープする(t *testing.T) {
	// 二重適用は冪等ではない(テキストとしての忠実な表示を優先)
	out := trainer.EscapeHTML("&lt;")
	assert.True(t, strings.HasPrefix(out, "&amp;"))
}
