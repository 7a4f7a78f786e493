package app

import (
	"dressa_storefront/admin"
	"dressa_storefront/kv"
	"dressa_storefront/session"
	"dressa_storefront/shop"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// 简化别名，便于 handlers 调用
type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router   *gin.Engine
	Store    kv.Store
	Shop     *shop.Shop
	Gate     *admin.Gate
	Sessions *session.AdminSessionStore
	Config   Config

	closers []func() error
}

// Config 从环境变量读取
type Config struct {
	Port           string
	StoreBackend   string // memory / redis / postgres / mysql / sqlite
	RedisAddr      string
	RedisPwd       string
	RedisPrefix    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	WebOrigin      string
	AdminSecret    string
	WhatsAppNumber string
	SubmitDelay    time.Duration
}

func (c Config) WhatsAppLink() string { return "https://wa.me/" + c.WhatsAppNumber }

func MustNew() *App {
	cfg := LoadConfig()
	st, closer := mustOpenStore(cfg)
	a := New(cfg, st)
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a
}

// New 用给定的 kv.Store 组装；测试里传内存实现
func New(cfg Config, st kv.Store) *App {
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	sh := shop.New(st)
	sh.SubmitDelay = cfg.SubmitDelay

	return &App{
		Router:   r,
		Store:    st,
		Shop:     sh,
		Gate:     admin.NewGate(cfg.AdminSecret),
		Sessions: session.NewAdminSessionStore(),
		Config:   cfg,
	}
}

func (a *App) Close() {
	for _, c := range a.closers {
		_ = c()
	}
}

func LoadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	var delay time.Duration
	if ms, err := strconv.Atoi(get("SUBMIT_DELAY_MS", "0")); err == nil && ms > 0 {
		delay = time.Duration(ms) * time.Millisecond
	}
	return Config{
		Port:           get("PORT", "3001"),
		StoreBackend:   get("STORE_BACKEND", "memory"),
		RedisAddr:      get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		RedisPrefix:    get("REDIS_PREFIX", "dressa:"),
		DBHost:         get("DB_HOST", "localhost"),
		DBPort:         get("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         get("DB_NAME", "dressa"),
		WebOrigin:      get("WEB_ORIGIN", "http://localhost:5173"),
		AdminSecret:    get("ADMIN_SECRET", "admin123"),
		WhatsAppNumber: get("WHATSAPP_NUMBER", "201234567890"),
		SubmitDelay:    delay,
	}
}
