package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration 可以从 JSON 字符串解析的时长
//
// 接受 "3s"、"500ms"、"1m30s" 这样的字符串，也接受纳秒整数。
// 序列化时总是输出字符串。
type Duration time.Duration

// UnmarshalJSON 实现 json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("config: invalid duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("config: duration must be a string like \"3s\" or integer nanoseconds")
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Std 返回 time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String 返回 time.Duration 的字符串形式
func (d Duration) String() string {
	return time.Duration(d).String()
}
