// pkg/database/holding.go
package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"CryptoFolio/pkg/model"
	"CryptoFolio/pkg/portfolio"
	"CryptoFolio/pkg/repository"
)

// HoldingDB 持仓表访问
type HoldingDB struct {
	db *gorm.DB
}

func (p *PostgresDB) Holding() *HoldingDB {
	return &HoldingDB{db: p.db}
}

// List 返回全部持仓，按ID排序
func (s *HoldingDB) List() ([]*model.Holding, error) {
	var holdings []*model.Holding
	if err := s.db.Order("id").Find(&holdings).Error; err != nil {
		return nil, fmt.Errorf("查询持仓列表失败: %w", err)
	}
	return holdings, nil
}

// Get 按键查找持仓
func (s *HoldingDB) Get(key portfolio.Key) (*model.Holding, error) {
	var h model.Holding
	var err error
	if key.ByID {
		err = s.db.First(&h, key.ID).Error
	} else {
		err = s.db.First(&h, "crypto_symbol = ?", key.Symbol).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("查询持仓失败: %w", err)
	}
	return &h, nil
}

// Create 创建持仓，符号冲突返回ErrSymbolExists
func (s *HoldingDB) Create(h *model.Holding) error {
	// 先按符号检查，唯一索引兜底
	var count int64
	if err := s.db.Model(&model.Holding{}).
		Where("crypto_symbol = ?", h.Symbol).
		Count(&count).Error; err != nil {
		return fmt.Errorf("检查持仓符号失败: %w", err)
	}
	if count > 0 {
		return repository.ErrSymbolExists
	}

	if err := s.db.Create(h).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrSymbolExists
		}
		return fmt.Errorf("创建持仓失败: %w", err)
	}
	return nil
}

// Update 按键更新持仓的部分字段
func (s *HoldingDB) Update(key portfolio.Key, upd *model.HoldingUpdate) (*model.Holding, error) {
	h, err := s.Get(key)
	if err != nil {
		return nil, err
	}

	upd.ApplyTo(h)
	if err := s.db.Save(h).Error; err != nil {
		return nil, fmt.Errorf("更新持仓失败: %w", err)
	}
	return h, nil
}

// Delete 按键删除持仓
func (s *HoldingDB) Delete(key portfolio.Key) error {
	h, err := s.Get(key)
	if err != nil {
		return err
	}

	if err := s.db.Delete(h).Error; err != nil {
		return fmt.Errorf("删除持仓失败: %w", err)
	}
	return nil
}
