// pkg/model/transaction.go
package model

import (
	"time"
)

// 交易类型
const (
	TransactionBuy  = "BUY"
	TransactionSell = "SELL"
)

// Transaction 交易记录，创建后不再修改
type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Symbol    string    `gorm:"column:crypto_symbol;type:varchar(10);index;not null" json:"crypto_symbol"`
	Type      string    `gorm:"column:transaction_type;type:varchar(10);not null" json:"transaction_type"` // BUY或SELL
	Amount    float64   `gorm:"not null" json:"amount"`
	Price     float64   `gorm:"not null" json:"price"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}
