// pkg/model/holding.go
package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Holding 持仓记录
type Holding struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Symbol        string    `gorm:"column:crypto_symbol;type:varchar(10);uniqueIndex;not null" json:"crypto_symbol"` // BTC、ETH等
	Name          string    `gorm:"column:crypto_name;type:varchar(50)" json:"crypto_name"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"` // 每单位买入价（USD）
	CurrentPrice  float64   `gorm:"not null" json:"current_price"`
	Category      string    `gorm:"type:varchar(20)" json:"category"` // major、altcoin、stablecoin等
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Holding) TableName() string {
	return "portfolio"
}

// BeforeSave 符号统一为大写存储
func (h *Holding) BeforeSave(tx *gorm.DB) error {
	h.Symbol = strings.ToUpper(h.Symbol)
	return nil
}

// HoldingUpdate 持仓更新字段，nil表示不修改
type HoldingUpdate struct {
	Name          *string  `json:"crypto_name"`
	Quantity      *float64 `json:"quantity" binding:"omitempty,gte=0"`
	PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,gte=0"`
	CurrentPrice  *float64 `json:"current_price" binding:"omitempty,gte=0"`
	Category      *string  `json:"category"`
}

// ApplyTo 将非nil字段应用到持仓
func (u *HoldingUpdate) ApplyTo(h *Holding) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Quantity != nil {
		h.Quantity = *u.Quantity
	}
	if u.PurchasePrice != nil {
		h.PurchasePrice = *u.PurchasePrice
	}
	if u.CurrentPrice != nil {
		h.CurrentPrice = *u.CurrentPrice
	}
	if u.Category != nil {
		h.Category = *u.Category
	}
}
