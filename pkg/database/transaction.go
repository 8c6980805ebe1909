// pkg/database/transaction.go
package database

import (
	"fmt"

	"gorm.io/gorm"

	"CryptoFolio/pkg/model"
)

// TransactionDB 交易表访问
type TransactionDB struct {
	db *gorm.DB
}

func (p *PostgresDB) Transaction() *TransactionDB {
	return &TransactionDB{db: p.db}
}

// List 返回交易记录，symbol非空时按符号过滤
func (s *TransactionDB) List(symbol string) ([]*model.Transaction, error) {
	query := s.db.Order("id")
	if symbol != "" {
		query = query.Where("crypto_symbol = ?", symbol)
	}

	var txns []*model.Transaction
	if err := query.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("查询交易记录失败: %w", err)
	}
	return txns, nil
}

// Create 追加交易记录
func (s *TransactionDB) Create(t *model.Transaction) error {
	if err := s.db.Create(t).Error; err != nil {
		return fmt.Errorf("创建交易记录失败: %w", err)
	}
	return nil
}
