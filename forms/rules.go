// Package forms validates storefront and admin form input.
//
// Each form declares a list of Rules; Validate evaluates them uniformly and
// returns field -> message. An empty result means the form is valid.
package forms

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	KindRequired Kind = iota
	KindEmail
	KindPhone
	KindDigits
	KindPositiveNumber
	KindDateAfter
	KindMinCount
)

// Rule 一条字段规则；Other 只给 DateAfter 用，N 给 Digits / MinCount 用
type Rule struct {
	Kind    Kind
	Field   string
	Other   string
	N       int
	Message string
}

func Required(field, msg string) Rule { return Rule{Kind: KindRequired, Field: field, Message: msg} }
func Email(field, msg string) Rule    { return Rule{Kind: KindEmail, Field: field, Message: msg} }
func Phone(field, msg string) Rule    { return Rule{Kind: KindPhone, Field: field, Message: msg} }
func Digits(field string, n int, msg string) Rule {
	return Rule{Kind: KindDigits, Field: field, N: n, Message: msg}
}
func PositiveNumber(field, msg string) Rule {
	return Rule{Kind: KindPositiveNumber, Field: field, Message: msg}
}

// DateAfter field 必须严格晚于 other
func DateAfter(field, other, msg string) Rule {
	return Rule{Kind: KindDateAfter, Field: field, Other: other, Message: msg}
}
func MinCount(field string, n int, msg string) Rule {
	return Rule{Kind: KindMinCount, Field: field, N: n, Message: msg}
}

// Form 由各表单结构体实现
type Form interface {
	Rules() []Rule
	Value(field string) string
	Count(field string) int
}

type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-+()]+$`)
	digitRe = regexp.MustCompile(`\d`)
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"}

func parseDate(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ok 除 Required / MinCount 外，空值一律放行，由 Required 负责
func (r Rule) ok(f Form) bool {
	v := f.Value(r.Field)
	switch r.Kind {
	case KindRequired:
		return strings.TrimSpace(v) != ""
	case KindMinCount:
		return f.Count(r.Field) >= r.N
	}
	if strings.TrimSpace(v) == "" {
		return true
	}
	switch r.Kind {
	case KindEmail:
		return emailRe.MatchString(v)
	case KindPhone:
		return phoneRe.MatchString(v) && digitRe.MatchString(v)
	case KindDigits:
		return len(digitRe.FindAllString(v, -1)) == r.N
	case KindPositiveNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) && n > 0
	case KindDateAfter:
		other := f.Value(r.Other)
		if strings.TrimSpace(other) == "" {
			return true
		}
		end, ok1 := parseDate(v)
		start, ok2 := parseDate(other)
		if !ok1 || !ok2 {
			return true
		}
		return end.After(start)
	}
	return true
}

// Validate 每个字段只报第一条失败的规则
// digitsOnly 只保留数字，电话入库前统一格式
func digitsOnly(v string) string {
	return strings.Join(digitRe.FindAllString(v, -1), "")
}

func Validate(f Form) Errors {
	errs := Errors{}
	for _, r := range f.Rules() {
		if _, seen := errs[r.Field]; seen {
			continue
		}
		if !r.ok(f) {
			errs[r.Field] = r.Message
		}
	}
	return errs
}

// Edited 用户改了某个字段：清掉该字段的错误，直到下次提交；
// 改的是日期对里的起始日期时，立即重算结束日期
func (e Errors) Edited(f Form, field string) {
	delete(e, field)
	for _, r := range f.Rules() {
		if r.Kind != KindDateAfter || r.Other != field {
			continue
		}
		if cur, has := e[r.Field]; has && cur != r.Message {
			continue
		}
		if r.ok(f) {
			delete(e, r.Field)
		} else {
			e[r.Field] = r.Message
		}
	}
}
