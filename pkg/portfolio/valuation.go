// pkg/portfolio/valuation.go
package portfolio

import (
	"CryptoFolio/pkg/model"
)

// ValuationSummary 持仓估值摘要，按当前价格即时计算，不入库
type ValuationSummary struct {
	CurrentValue float64 `json:"current_value"`
	Invested     float64 `json:"invested"`
	GainLoss     float64 `json:"gain_loss"`
	ReturnPct    float64 `json:"return_pct"`
}

// Totals 组合汇总估值
type Totals struct {
	CurrentValue float64 `json:"current_value"`
	Invested     float64 `json:"invested"`
	GainLoss     float64 `json:"gain_loss"`
	ReturnPct    float64 `json:"return_pct"`
}

// Valuate 计算单个持仓的估值
// 输入必须是非负有限数，校验由外层schema负责
func Valuate(quantity, purchasePrice, currentPrice float64) ValuationSummary {
	currentValue := quantity * currentPrice
	invested := quantity * purchasePrice

	s := ValuationSummary{
		CurrentValue: currentValue,
		Invested:     invested,
		GainLoss:     currentValue - invested,
	}

	// 成本为0时收益率记为0，避免除零
	if invested > 0 {
		s.ReturnPct = s.GainLoss / invested * 100
	}

	return s
}

// ValuateHolding 计算持仓记录的估值
func ValuateHolding(h *model.Holding) ValuationSummary {
	return Valuate(h.Quantity, h.PurchasePrice, h.CurrentPrice)
}

// Aggregate 计算组合汇总
// 先对各持仓的市值和成本求和，再用总额重新计算收益率，
// 而不是对各持仓收益率取平均，避免小持仓扭曲结果
func Aggregate(holdings []*model.Holding) Totals {
	var t Totals

	for _, h := range holdings {
		s := ValuateHolding(h)
		t.CurrentValue += s.CurrentValue
		t.Invested += s.Invested
	}

	t.GainLoss = t.CurrentValue - t.Invested
	if t.Invested > 0 {
		t.ReturnPct = t.GainLoss / t.Invested * 100
	}

	return t
}
