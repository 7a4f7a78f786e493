package shop

import (
	"context"
	"dressa_storefront/activity"
	"dressa_storefront/forms"
	"dressa_storefront/models"
)

// 每个 Submit* 流程一致：校验 -> 生成记录 -> 追加 -> 记一条活动日志 -> 等待 SubmitDelay。
// 校验不通过时什么都不写，直接返回错误表。

func (s *Shop) SubmitBuy(ctx context.Context, f forms.BuyForm, userAgent string) (models.BuyRequest, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.BuyRequest{}, errs
	}
	rec := f.Record()
	s.BuyRequests.Append(ctx, rec)
	s.Activity.Log(ctx, activity.FormSubmit, map[string]any{"form": "buy", "dressId": f.DressID}, userAgent)
	s.pace(ctx)
	return rec, nil
}

func (s *Shop) SubmitSell(ctx context.Context, f forms.SellForm, userAgent string) (models.SellRequest, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.SellRequest{}, errs
	}
	rec := f.Record()
	s.SellRequests.Append(ctx, rec)
	s.Activity.Log(ctx, activity.FormSubmit, map[string]any{"form": "sell", "title": f.Title}, userAgent)
	s.pace(ctx)
	return rec, nil
}

func (s *Shop) SubmitRent(ctx context.Context, f forms.RentForm, userAgent string) (models.RentRequest, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.RentRequest{}, errs
	}
	rec := f.Record()
	s.RentRequests.Append(ctx, rec)
	s.Activity.Log(ctx, activity.FormSubmit, map[string]any{"form": "rent", "occasion": f.Occasion}, userAgent)
	s.pace(ctx)
	return rec, nil
}

func (s *Shop) SubmitRentOut(ctx context.Context, f forms.RentOutForm, userAgent string) (models.RentOutRequest, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.RentOutRequest{}, errs
	}
	rec := f.Record()
	s.RentOutRequests.Append(ctx, rec)
	s.Activity.Log(ctx, activity.FormSubmit, map[string]any{"form": "rentout", "size": f.Size}, userAgent)
	s.pace(ctx)
	return rec, nil
}

// SubmitDressRequest 定制请求与联系留言在日志里记为 form_open
func (s *Shop) SubmitDressRequest(ctx context.Context, f forms.DressRequestForm, userAgent string) (models.DressRequest, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.DressRequest{}, errs
	}
	rec := f.Record()
	s.DressRequests.Append(ctx, rec)
	s.Activity.Log(ctx, activity.FormOpen, map[string]any{"form": "dress_request", "dressName": f.DressName}, userAgent)
	s.pace(ctx)
	return rec, nil
}

func (s *Shop) SubmitContact(ctx context.Context, f forms.ContactForm, userAgent string) (models.ContactSubmission, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.ContactSubmission{}, errs
	}
	rec := f.Record()
	s.ContactSubmissions.Append(ctx, rec)
	s.Activity.Log(ctx, activity.FormOpen, map[string]any{"form": "contact", "subject": f.Subject}, userAgent)
	s.pace(ctx)
	return rec, nil
}

// AddDressFromForm 管理员新增裙子
func (s *Shop) AddDressFromForm(ctx context.Context, f forms.DressForm) (models.Dress, forms.Errors) {
	if errs := forms.Validate(f); !errs.Valid() {
		return models.Dress{}, errs
	}
	return s.AddDress(ctx, f.Record()), nil
}
