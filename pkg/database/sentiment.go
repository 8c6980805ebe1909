// pkg/database/sentiment.go
package database

import (
	"fmt"

	"gorm.io/gorm"

	"CryptoFolio/pkg/model"
)

// SentimentDB 情绪表访问
type SentimentDB struct {
	db *gorm.DB
}

func (p *PostgresDB) Sentiment() *SentimentDB {
	return &SentimentDB{db: p.db}
}

// List 返回全部情绪记录
func (s *SentimentDB) List() ([]*model.Sentiment, error) {
	var sentiments []*model.Sentiment
	if err := s.db.Order("id").Find(&sentiments).Error; err != nil {
		return nil, fmt.Errorf("查询情绪记录失败: %w", err)
	}
	return sentiments, nil
}

// Create 追加情绪记录
func (s *SentimentDB) Create(sentiment *model.Sentiment) error {
	if err := s.db.Create(sentiment).Error; err != nil {
		return fmt.Errorf("创建情绪记录失败: %w", err)
	}
	return nil
}
