package admin

// Gate 演示级的管理入口：和一个固定口令做字符串比较。
// 不哈希、不限流、不过期，不是安全边界。
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate { return &Gate{secret: secret} }

func (g *Gate) Check(input string) bool {
	return g.secret != "" && input == g.secret
}
