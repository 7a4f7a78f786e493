package store

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// TimeLayout ISO-8601，UTC，毫秒精度
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Now 测试里可以替换
var Now = time.Now

func Timestamp() string { return Now().UTC().Format(TimeLayout) }

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}

// NewID 生成 "<prefix>-<毫秒>-<9位随机>"；prefix 为空时省略前缀
// 唯一性靠时间戳+随机数，不做去重
func NewID(prefix string) string {
	id := strconv.FormatInt(Now().UnixMilli(), 10) + "-" + randSuffix(9)
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// NewDressID 管理员新增裙子用：DR- 加至少三位的随机数
func NewDressID() string {
	return fmt.Sprintf("DR-%03d", rand.IntN(10000))
}
