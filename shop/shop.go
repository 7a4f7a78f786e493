// Package shop binds each record kind to its fixed storage key and
// implements the storefront submissions and admin console operations.
package shop

import (
	"context"
	"dressa_storefront/activity"
	"dressa_storefront/catalog"
	"dressa_storefront/kv"
	"dressa_storefront/models"
	"dressa_storefront/store"
	"time"
)

// 存储布局：每个 key 一个 JSON 数组
const (
	KeyBuyRequests        = "buyRequests"
	KeySellRequests       = "sellRequests"
	KeyRentRequests       = "rentRequests"
	KeyRentOutRequests    = "rentOutRequests"
	KeyDressRequests      = "dressRequests"
	KeyContactSubmissions = "contactSubmissions"
	KeyAdminDresses       = "adminDresses"
)

type Shop struct {
	BuyRequests        *store.Collection[models.BuyRequest]
	SellRequests       *store.Collection[models.SellRequest]
	RentRequests       *store.Collection[models.RentRequest]
	RentOutRequests    *store.Collection[models.RentOutRequest]
	DressRequests      *store.Collection[models.DressRequest]
	ContactSubmissions *store.Collection[models.ContactSubmission]
	Activity           *activity.Logger

	adminDresses *store.Collection[models.Dress]

	// SubmitDelay 提交成功后人为等待的时间，只为前端节奏
	SubmitDelay time.Duration
}

func New(s kv.Store) *Shop {
	return &Shop{
		BuyRequests:        store.New[models.BuyRequest](s, KeyBuyRequests),
		SellRequests:       store.New[models.SellRequest](s, KeySellRequests),
		RentRequests:       store.New[models.RentRequest](s, KeyRentRequests),
		RentOutRequests:    store.New[models.RentOutRequest](s, KeyRentOutRequests),
		DressRequests:      store.New[models.DressRequest](s, KeyDressRequests),
		ContactSubmissions: store.New[models.ContactSubmission](s, KeyContactSubmissions),
		Activity:           activity.NewLogger(s),
		adminDresses:       store.New[models.Dress](s, KeyAdminDresses),
	}
}

// pace 等待 SubmitDelay；请求被取消时提前返回
func (s *Shop) pace(ctx context.Context) {
	if s.SubmitDelay <= 0 {
		return
	}
	t := time.NewTimer(s.SubmitDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// ---- 管理后台：裙子目录 ----

// Dresses 第一次读取时用内置目录初始化，之后只读持久化的版本
func (s *Shop) Dresses(ctx context.Context) []models.Dress {
	s.adminDresses.SeedIfAbsent(ctx, catalog.Builtin())
	return s.adminDresses.List(ctx)
}

func (s *Shop) AddDress(ctx context.Context, d models.Dress) models.Dress {
	s.adminDresses.SeedIfAbsent(ctx, catalog.Builtin())
	s.adminDresses.Append(ctx, d)
	return d
}

// UpdateDress 只改 patch 里给出的字段；找不到返回 false
func (s *Shop) UpdateDress(ctx context.Context, id string, patch models.DressPatch) (models.Dress, bool) {
	s.adminDresses.SeedIfAbsent(ctx, catalog.Builtin())
	m, err := store.PatchOf(patch)
	if err != nil {
		return models.Dress{}, false
	}
	return s.adminDresses.UpdatePartial(ctx, id, m)
}

func (s *Shop) DeleteDress(ctx context.Context, id string) {
	s.adminDresses.SeedIfAbsent(ctx, catalog.Builtin())
	s.adminDresses.DeleteByID(ctx, id)
}

// ---- 管理后台：定制请求 / 留言 ----

// UpdateDressRequestStatus 状态之间没有流转限制，任何值都可以接任何值
func (s *Shop) UpdateDressRequestStatus(ctx context.Context, id string, status models.DressRequestStatus) (models.DressRequest, bool) {
	return s.DressRequests.UpdatePartial(ctx, id, map[string]any{"status": status})
}

func (s *Shop) DeleteDressRequest(ctx context.Context, id string) { s.DressRequests.DeleteByID(ctx, id) }

func (s *Shop) DeleteContactSubmission(ctx context.Context, id string) {
	s.ContactSubmissions.DeleteByID(ctx, id)
}

type Statistics struct {
	TotalDresses         int `json:"totalDresses"`
	PendingRequests      int `json:"pendingRequests"`
	ContactedRequests    int `json:"contactedRequests"`
	CompletedRequests    int `json:"completedRequests"`
	TotalContactMessages int `json:"totalContactMessages"`
}

func (s *Shop) Statistics(ctx context.Context) Statistics {
	st := Statistics{
		TotalDresses:         len(s.Dresses(ctx)),
		TotalContactMessages: len(s.ContactSubmissions.List(ctx)),
	}
	for _, r := range s.DressRequests.List(ctx) {
		switch r.Status {
		case models.StatusPending:
			st.PendingRequests++
		case models.StatusContacted:
			st.ContactedRequests++
		case models.StatusCompleted:
			st.CompletedRequests++
		}
	}
	return st
}
