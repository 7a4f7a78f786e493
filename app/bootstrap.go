// app/bootstrap.go
package app

import (
	"context"
	"dressa_storefront/activity"
	"dressa_storefront/kv"
	"fmt"
	"log"
	"strings"
)

// Bootstrap 启动时打印各集合的现状；不触发目录初始化（那是第一次读取时的事）
func Bootstrap(ctx context.Context, a *App) {
	log.Printf("[BOOTSTRAP] backend=%s %s", a.Config.StoreBackend, collectionSummary(ctx, a))
	if l, ok := a.Store.(kv.Lister); ok {
		if keys, err := l.Keys(ctx); err != nil {
			log.Printf("[BOOTSTRAP] list keys: %v", err)
		} else {
			log.Printf("[BOOTSTRAP] stored keys: %v", keys)
		}
	}
	if a.Config.AdminSecret == "admin123" {
		log.Printf("[BOOTSTRAP] ADMIN_SECRET is the built-in default; set it before exposing %s/admin",
			strings.TrimRight(a.Config.WebOrigin, "/"))
	}
}

// collectionSummary 形如 "buyRequests=3 sellRequests=0 ..."
func collectionSummary(ctx context.Context, a *App) string {
	sh := a.Shop
	parts := []string{
		fmt.Sprintf("%s=%d", sh.BuyRequests.Key(), len(sh.BuyRequests.List(ctx))),
		fmt.Sprintf("%s=%d", sh.SellRequests.Key(), len(sh.SellRequests.List(ctx))),
		fmt.Sprintf("%s=%d", sh.RentRequests.Key(), len(sh.RentRequests.List(ctx))),
		fmt.Sprintf("%s=%d", sh.RentOutRequests.Key(), len(sh.RentOutRequests.List(ctx))),
		fmt.Sprintf("%s=%d", sh.DressRequests.Key(), len(sh.DressRequests.List(ctx))),
		fmt.Sprintf("%s=%d", sh.ContactSubmissions.Key(), len(sh.ContactSubmissions.List(ctx))),
		fmt.Sprintf("%s=%d", activity.Key, len(sh.Activity.List(ctx))),
	}
	return strings.Join(parts, " ")
}
