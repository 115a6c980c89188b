package trainer

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration はミリ秒を「M分S秒」の表示文字列にする。1 分未満は「S秒」。
// 秒は切り捨て。
func FormatDuration(ms int64) string {
	total := ms / 1000
	minutes := total / 60
	seconds := total % 60
	if minutes > 0 {
		return fmt.Sprintf("%d分%d秒", minutes, seconds)
	}
	return fmt.Sprintf("%d秒", seconds)
}

// FormatDateTime は時刻をローカルタイムゾーンの「Y/M/D H:MM」表示にする。
// 分のみ 2 桁ゼロ埋め。月・日・時はゼロ埋めしない。
func FormatDateTime(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%d/%d/%d %d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// FormatDate は ISO-8601 文字列を FormatDateTime の表示形式にする。
func FormatDate(iso string) (string, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", iso, err)
	}
	return FormatDateTime(t), nil
}

// htmlEscaper は HTML 特殊文字 5 種を実体参照へ置換する(DOM 非依存)。
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML は s を HTML のテキストとして挿入しても元の文字列どおり表示されるよう
// エスケープする。商品名など利用者入力を印刷用 HTML に埋め込む際に使う。
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
