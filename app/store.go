package app

import (
	"context"
	"dressa_storefront/db"
	"dressa_storefront/kv"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// mustOpenStore 按 STORE_BACKEND 选择持久化实现，返回关闭函数
func mustOpenStore(cfg Config) (kv.Store, func() error) {
	switch cfg.StoreBackend {
	case "memory", "":
		log.Println("store: in-memory (data is lost on restart)")
		return kv.NewMemoryStore(), nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		log.Printf("store: redis %s (prefix %q)", cfg.RedisAddr, cfg.RedisPrefix)
		return kv.NewRedisStore(rdb, cfg.RedisPrefix), rdb.Close

	case "postgres", "postgresql", "mysql", "mariadb", "sqlite":
		conn := db.ConnectDB(db.Options{
			Type:     cfg.StoreBackend,
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
		})
		return db.NewRepo(conn), func() error { return db.Close(conn) }
	}
	log.Fatalf("unsupported STORE_BACKEND: %s", cfg.StoreBackend)
	return nil, nil
}
