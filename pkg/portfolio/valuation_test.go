package portfolio

import (
	"math"
	"testing"

	"CryptoFolio/pkg/model"
)

func TestValuate(t *testing.T) {
	cases := []struct {
		name                string
		quantity, p0, p1    float64
		wantValue, wantCost float64
		wantPct             float64
	}{
		{"盈利", 0.5, 45000, 52000, 26000, 22500, (26000 - 22500) / 22500.0 * 100},
		{"亏损", 10, 100, 80, 800, 1000, -20},
		{"持平", 5000, 1, 1, 5000, 5000, 0},
		{"零数量", 0, 45000, 52000, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Valuate(tc.quantity, tc.p0, tc.p1)

			if s.CurrentValue != tc.quantity*tc.p1 {
				t.Errorf("CurrentValue = %v, 期望 %v", s.CurrentValue, tc.quantity*tc.p1)
			}
			if s.Invested != tc.quantity*tc.p0 {
				t.Errorf("Invested = %v, 期望 %v", s.Invested, tc.quantity*tc.p0)
			}
			if s.GainLoss != s.CurrentValue-s.Invested {
				t.Errorf("GainLoss = %v, 期望 %v", s.GainLoss, s.CurrentValue-s.Invested)
			}
			if math.Abs(s.ReturnPct-tc.wantPct) > 1e-9 {
				t.Errorf("ReturnPct = %v, 期望 %v", s.ReturnPct, tc.wantPct)
			}
		})
	}
}

func TestValuateZeroInvested(t *testing.T) {
	// 买入价为0时成本为0，收益率必须按0处理而不是除零
	s := Valuate(100, 0, 50)
	if s.ReturnPct != 0 {
		t.Errorf("成本为0时 ReturnPct = %v, 期望 0", s.ReturnPct)
	}
	if s.CurrentValue != 5000 {
		t.Errorf("CurrentValue = %v, 期望 5000", s.CurrentValue)
	}
}

func TestAggregate(t *testing.T) {
	holdings := []*model.Holding{
		{Symbol: "BTC", Quantity: 0.5, PurchasePrice: 45000, CurrentPrice: 52000},
		{Symbol: "ETH", Quantity: 3, PurchasePrice: 2500, CurrentPrice: 3100},
		{Symbol: "USDC", Quantity: 5000, PurchasePrice: 1, CurrentPrice: 1},
	}

	totals := Aggregate(holdings)

	var wantValue, wantInvested float64
	for _, h := range holdings {
		s := ValuateHolding(h)
		wantValue += s.CurrentValue
		wantInvested += s.Invested
	}

	if totals.CurrentValue != wantValue {
		t.Errorf("CurrentValue = %v, 期望 %v", totals.CurrentValue, wantValue)
	}
	if totals.Invested != wantInvested {
		t.Errorf("Invested = %v, 期望 %v", totals.Invested, wantInvested)
	}

	// 收益率必须按总额计算，不是各持仓收益率的平均值
	wantPct := (wantValue - wantInvested) / wantInvested * 100
	if math.Abs(totals.ReturnPct-wantPct) > 1e-9 {
		t.Errorf("ReturnPct = %v, 期望 %v", totals.ReturnPct, wantPct)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	if totals.CurrentValue != 0 || totals.Invested != 0 || totals.ReturnPct != 0 {
		t.Errorf("空组合汇总应全为0, 实际 %+v", totals)
	}
}
