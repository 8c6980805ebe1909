// pkg/model/sentiment.go
package model

import (
	"time"
)

// Sentiment 市场情绪记录，创建后不再修改
type Sentiment struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Symbol             string    `gorm:"column:crypto_symbol;type:varchar(10);index;not null" json:"crypto_symbol"`
	Score              float64   `gorm:"column:sentiment_score;not null" json:"sentiment_score"` // -1到1
	MentionCount       int       `gorm:"default:0" json:"mention_count"`
	PositivePercentage float64   `gorm:"default:0" json:"positive_percentage"`
	Source             string    `gorm:"type:varchar(20)" json:"source"` // twitter、reddit
	Date               time.Time `gorm:"autoCreateTime" json:"date"`
}

func (Sentiment) TableName() string {
	return "market_sentiment"
}
