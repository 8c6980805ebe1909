// pkg/repository/repository.go
package repository

import (
	"errors"

	"CryptoFolio/pkg/model"
	"CryptoFolio/pkg/portfolio"
)

// 存储层错误，HTTP层通过errors.Is映射为状态码
var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrSymbolExists 同符号持仓已存在
	ErrSymbolExists = errors.New("持仓符号已存在")
)

// HoldingStore 持仓存储
type HoldingStore interface {
	List() ([]*model.Holding, error)
	Get(key portfolio.Key) (*model.Holding, error)
	Create(h *model.Holding) error
	Update(key portfolio.Key, upd *model.HoldingUpdate) (*model.Holding, error)
	Delete(key portfolio.Key) error
}

// TransactionStore 交易存储，只追加
type TransactionStore interface {
	List(symbol string) ([]*model.Transaction, error)
	Create(t *model.Transaction) error
}

// SentimentStore 情绪存储，只追加
type SentimentStore interface {
	List() ([]*model.Sentiment, error)
	Create(s *model.Sentiment) error
}

// Stores 各存储的集合，便于整体注入
type Stores struct {
	Holdings     HoldingStore
	Transactions TransactionStore
	Sentiments   SentimentStore
}
