// controllers/srv.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"dressa_storefront/admin"
	"dressa_storefront/app"
	"dressa_storefront/session"
	"dressa_storefront/shop"
)

type Srv struct {
	Shop      *shop.Shop
	Gate      *admin.Gate
	Sessions  *session.AdminSessionStore
	WebOrigin string
	Cfg       app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Shop:      a.Shop,
		Gate:      a.Gate,
		Sessions:  a.Sessions,
		WebOrigin: a.Config.WebOrigin,
		Cfg:       a.Config,
	}
}

// --- helpers ---

// 统一设置管理会话 Cookie；maxAge < 0 表示删除
func (s *Srv) setAdminCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	ma := int(maxAge / time.Second)
	if maxAge < 0 {
		ma = -1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     app.AdminSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   ma,
	})
}
