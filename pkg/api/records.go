// pkg/api/records.go
// 情绪与交易接口，纯追加和查询，无派生计算
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CryptoFolio/pkg/model"
)

// SentimentCreateRequest 创建情绪记录请求
type SentimentCreateRequest struct {
	Symbol             string   `json:"crypto_symbol" binding:"required,max=10"`
	Score              *float64 `json:"sentiment_score" binding:"required,gte=-1,lte=1"`
	MentionCount       int      `json:"mention_count" binding:"gte=0"`
	PositivePercentage float64  `json:"positive_percentage" binding:"gte=0,lte=100"`
	Source             string   `json:"source" binding:"max=20"`
}

// ListSentiments 获取情绪记录处理程序
func (h *Handlers) ListSentiments(c *gin.Context) {
	sentiments, err := h.stores.Sentiments.List()
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": sentiments,
	})
}

// CreateSentiment 添加情绪记录处理程序
func (h *Handlers) CreateSentiment(c *gin.Context) {
	var req SentimentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	sentiment := &model.Sentiment{
		Symbol:             req.Symbol,
		Score:              *req.Score,
		MentionCount:       req.MentionCount,
		PositivePercentage: req.PositivePercentage,
		Source:             req.Source,
	}

	if err := h.stores.Sentiments.Create(sentiment); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sentiment)
}

// TransactionCreateRequest 创建交易记录请求
type TransactionCreateRequest struct {
	Symbol string   `json:"crypto_symbol" binding:"required,max=10"`
	Type   string   `json:"transaction_type" binding:"required,oneof=BUY SELL"`
	Amount *float64 `json:"amount" binding:"required,gte=0"`
	Price  *float64 `json:"price" binding:"required,gte=0"`
	Notes  string   `json:"notes"`
}

// ListTransactions 获取交易记录处理程序，可按符号过滤
func (h *Handlers) ListTransactions(c *gin.Context) {
	symbol := c.Query("symbol")

	txns, err := h.stores.Transactions.List(symbol)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": txns,
	})
}

// CreateTransaction 创建交易记录处理程序
func (h *Handlers) CreateTransaction(c *gin.Context) {
	var req TransactionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	txn := &model.Transaction{
		Symbol: req.Symbol,
		Type:   req.Type,
		Amount: *req.Amount,
		Price:  *req.Price,
		Notes:  req.Notes,
	}

	if err := h.stores.Transactions.Create(txn); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}
