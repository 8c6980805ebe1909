// pkg/repository/memory.go
package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"CryptoFolio/pkg/model"
	"CryptoFolio/pkg/portfolio"
)

// MemoryStore 内存存储，用于开发模式和测试
// 单写锁保护全部map，规模很小，不需要更细的锁
type MemoryStore struct {
	holdingsByID     map[uint]*model.Holding
	holdingsBySymbol map[string]*model.Holding
	transactions     []*model.Transaction
	sentiments       []*model.Sentiment
	nextHoldingID    uint
	nextTxnID        uint
	nextSentimentID  uint
	mutex            sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		holdingsByID:     make(map[uint]*model.Holding),
		holdingsBySymbol: make(map[string]*model.Holding),
		nextHoldingID:    1,
		nextTxnID:        1,
		nextSentimentID:  1,
	}
}

// Stores 以存储集合的形式暴露
func (m *MemoryStore) Stores() *Stores {
	return &Stores{
		Holdings:     m,
		Transactions: (*memoryTransactions)(m),
		Sentiments:   (*memorySentiments)(m),
	}
}

// List 返回全部持仓，按ID排序
func (m *MemoryStore) List() ([]*model.Holding, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	holdings := make([]*model.Holding, 0, len(m.holdingsByID))
	for _, h := range m.holdingsByID {
		holdings = append(holdings, copyHolding(h))
	}
	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].ID < holdings[j].ID
	})
	return holdings, nil
}

// Get 按键查找持仓
func (m *MemoryStore) Get(key portfolio.Key) (*model.Holding, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	h := m.lookup(key)
	if h == nil {
		return nil, ErrNotFound
	}
	return copyHolding(h), nil
}

// Create 创建持仓，符号冲突返回ErrSymbolExists
func (m *MemoryStore) Create(h *model.Holding) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	symbol := strings.ToUpper(h.Symbol)
	if _, exists := m.holdingsBySymbol[symbol]; exists {
		return ErrSymbolExists
	}

	now := time.Now()
	h.ID = m.nextHoldingID
	h.Symbol = symbol
	h.CreatedAt = now
	h.UpdatedAt = now
	m.nextHoldingID++

	stored := copyHolding(h)
	m.holdingsByID[stored.ID] = stored
	m.holdingsBySymbol[symbol] = stored
	return nil
}

// Update 按键更新持仓的部分字段
func (m *MemoryStore) Update(key portfolio.Key, upd *model.HoldingUpdate) (*model.Holding, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	h := m.lookup(key)
	if h == nil {
		return nil, ErrNotFound
	}

	upd.ApplyTo(h)
	h.UpdatedAt = time.Now()
	return copyHolding(h), nil
}

// Delete 按键删除持仓
func (m *MemoryStore) Delete(key portfolio.Key) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	h := m.lookup(key)
	if h == nil {
		return ErrNotFound
	}

	delete(m.holdingsByID, h.ID)
	delete(m.holdingsBySymbol, h.Symbol)
	return nil
}

func (m *MemoryStore) lookup(key portfolio.Key) *model.Holding {
	if key.ByID {
		return m.holdingsByID[key.ID]
	}
	return m.holdingsBySymbol[key.Symbol]
}

func copyHolding(h *model.Holding) *model.Holding {
	c := *h
	return &c
}

// memoryTransactions 交易存储的内存实现
type memoryTransactions MemoryStore

// List 返回交易记录，symbol非空时按符号过滤
func (m *memoryTransactions) List(symbol string) ([]*model.Transaction, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var result []*model.Transaction
	for _, t := range m.transactions {
		if symbol != "" && t.Symbol != symbol {
			continue
		}
		c := *t
		result = append(result, &c)
	}
	return result, nil
}

// Create 追加交易记录
func (m *memoryTransactions) Create(t *model.Transaction) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	t.ID = m.nextTxnID
	m.nextTxnID++
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}

	c := *t
	m.transactions = append(m.transactions, &c)
	return nil
}

// memorySentiments 情绪存储的内存实现
type memorySentiments MemoryStore

// List 返回全部情绪记录
func (m *memorySentiments) List() ([]*model.Sentiment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	result := make([]*model.Sentiment, 0, len(m.sentiments))
	for _, s := range m.sentiments {
		c := *s
		result = append(result, &c)
	}
	return result, nil
}

// Create 追加情绪记录
func (m *memorySentiments) Create(s *model.Sentiment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	s.ID = m.nextSentimentID
	m.nextSentimentID++
	if s.Date.IsZero() {
		s.Date = time.Now()
	}

	c := *s
	m.sentiments = append(m.sentiments, &c)
	return nil
}
