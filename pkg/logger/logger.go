package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config はロガーのオプション。
type Config struct {
	Env   string // development -> 人間が読みやすいコンソール出力; それ以外 -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger は zerolog の薄いラッパー。注入しやすさと一貫性のため。
type Logger struct {
	zl zerolog.Logger
}

// New は構造化ロガーを作る。development ではコンソール出力、その他は JSON。
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// zerolog のグローバルロガーも差し替える(グローバルを使うライブラリ向け)
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace〜Fatal は zerolog へ委譲する。
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With は固定フィールド付きのサブロガー用コンテキストを返す。
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
