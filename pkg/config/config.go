package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config はアプリケーション全体の設定(Viper で env と任意の .env ファイルから読む)。
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Trainer TrainerConfig
}

// AppConfig は全般設定。
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig は PostgreSQL の設定。
// DatabaseURL が空でなければ接続文字列として優先する。
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString は使用する DSN を返す。DatabaseURL 優先、無ければ組み立てる。
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig は JWT の設定。
type JWTConfig struct {
	Secret     string
	Expiration int // 分
	Issuer     string
}

// HTTPConfig は HTTP サーバーの設定。
type HTTPConfig struct {
	Host string
	Port int
}

// Addr は待ち受けアドレス(host:port)を返す。
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TrainerConfig は出題のデフォルト値。リクエストで未指定のときに使う。
type TrainerConfig struct {
	DefaultQuestionCount int // 通常練習の出題数
	DefaultSlipCount     int // 伝票モードの伝票枚数
	DefaultItemsPerSlip  int // 伝票 1 枚あたりの商品数
	DefaultTimeLimitSec  int // タイムアタックの制限時間(秒)
}

// Load は環境変数(と任意の .env ファイル)から設定を読む。env が優先。
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // 無ければ無視

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "picking-dojo"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "picking_dojo"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "picking-dojo"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Trainer: TrainerConfig{
			DefaultQuestionCount: getInt(v, "TRAINER_QUESTION_COUNT", 10),
			DefaultSlipCount:     getInt(v, "TRAINER_SLIP_COUNT", 3),
			DefaultItemsPerSlip:  getInt(v, "TRAINER_ITEMS_PER_SLIP", 3),
			DefaultTimeLimitSec:  getInt(v, "TRAINER_TIME_LIMIT_SEC", 60),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
