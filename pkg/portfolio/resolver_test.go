package portfolio

import (
	"testing"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		token      string
		wantByID   bool
		wantID     uint
		wantSymbol string
	}{
		{"11", true, 11, ""},
		{"0", true, 0, ""},
		{"BTC", false, 0, "BTC"},
		{"btc", false, 0, "BTC"},
		{"usd-coin", false, 0, "USD-COIN"},
		// 纯数字符号永远按ID解析，这是已知限制
		{"123", true, 123, ""},
		// 带符号或混合的token按符号处理
		{"-5", false, 0, "-5"},
		{"12BTC", false, 0, "12BTC"},
	}

	for _, tc := range cases {
		key := ParseKey(tc.token)
		if key.ByID != tc.wantByID {
			t.Errorf("ParseKey(%q).ByID = %v, 期望 %v", tc.token, key.ByID, tc.wantByID)
			continue
		}
		if key.ByID && key.ID != tc.wantID {
			t.Errorf("ParseKey(%q).ID = %d, 期望 %d", tc.token, key.ID, tc.wantID)
		}
		if !key.ByID && key.Symbol != tc.wantSymbol {
			t.Errorf("ParseKey(%q).Symbol = %q, 期望 %q", tc.token, key.Symbol, tc.wantSymbol)
		}
	}
}

func TestKeyString(t *testing.T) {
	if got := ParseKey("11").String(); got != "11" {
		t.Errorf("String() = %q, 期望 %q", got, "11")
	}
	if got := ParseKey("btc").String(); got != "BTC" {
		t.Errorf("String() = %q, 期望 %q", got, "BTC")
	}
}
