package forms

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Input 接受 JSON 字符串或数字，统一按文本校验
type Input string

func (in *Input) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*in = Input(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*in = Input(n.String())
		return nil
	}
	return fmt.Errorf("Input: expected string or number, got %s", data)
}

func (in Input) String() string { return string(in) }

// Float 解析失败返回 0，调用前应已通过 PositiveNumber 校验
func (in Input) Float() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(string(in)), 64)
	return f
}
