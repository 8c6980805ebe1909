package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"CryptoFolio/pkg/model"
	"CryptoFolio/pkg/portfolio"
	"CryptoFolio/pkg/repository"
)

// ServiceVersion 对外公开的服务版本号
const ServiceVersion = "1.0.0"

// Handlers API处理程序
type Handlers struct {
	stores      *repository.Stores
	serviceName string
}

// NewHandlers 创建新的API处理程序
func NewHandlers(stores *repository.Stores, serviceName string) *Handlers {
	return &Handlers{
		stores:      stores,
		serviceName: serviceName,
	}
}

// HealthCheck 健康检查处理程序
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"version": ServiceVersion,
	})
}

// HoldingView 带估值的持仓视图
type HoldingView struct {
	*model.Holding
	Valuation portfolio.ValuationSummary `json:"valuation"`
}

// ListPortfolio 获取组合处理程序
// 返回全部持仓及各自估值，外加汇总
func (h *Handlers) ListPortfolio(c *gin.Context) {
	holdings, err := h.stores.Holdings.List()
	if err != nil {
		h.storeError(c, err)
		return
	}

	views := make([]HoldingView, 0, len(holdings))
	for _, holding := range holdings {
		views = append(views, HoldingView{
			Holding:   holding,
			Valuation: portfolio.ValuateHolding(holding),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"holdings": views,
		"totals":   portfolio.Aggregate(holdings),
	})
}

// HoldingCreateRequest 创建持仓请求
// 数量和价格用指针承载required，0值也能通过校验
type HoldingCreateRequest struct {
	Symbol        string   `json:"crypto_symbol" binding:"required,max=10"`
	Name          string   `json:"crypto_name" binding:"required,max=50"`
	Quantity      *float64 `json:"quantity" binding:"required,gte=0"`
	PurchasePrice *float64 `json:"purchase_price" binding:"required,gte=0"`
	CurrentPrice  *float64 `json:"current_price" binding:"required,gte=0"`
	Category      string   `json:"category" binding:"max=20"`
}

// CreateHolding 创建持仓处理程序
func (h *Handlers) CreateHolding(c *gin.Context) {
	var req HoldingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	// 符号在边界处归一为大写，与查找键的归一化保持一致
	holding := &model.Holding{
		Symbol:        strings.ToUpper(req.Symbol),
		Name:          req.Name,
		Quantity:      *req.Quantity,
		PurchasePrice: *req.PurchasePrice,
		CurrentPrice:  *req.CurrentPrice,
		Category:      req.Category,
	}

	if err := h.stores.Holdings.Create(holding); err != nil {
		if errors.Is(err, repository.ErrSymbolExists) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "持仓 " + holding.Symbol + " 已存在",
			})
			return
		}
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, HoldingView{
		Holding:   holding,
		Valuation: portfolio.ValuateHolding(holding),
	})
}

// GetHolding 获取单个持仓处理程序
// 路径参数按ID或符号解析，见portfolio.ParseKey
func (h *Handlers) GetHolding(c *gin.Context) {
	key := portfolio.ParseKey(c.Param("symbol_or_id"))

	holding, err := h.stores.Holdings.Get(key)
	if err != nil {
		h.holdingError(c, key, err)
		return
	}

	c.JSON(http.StatusOK, HoldingView{
		Holding:   holding,
		Valuation: portfolio.ValuateHolding(holding),
	})
}

// UpdateHolding 更新持仓处理程序
func (h *Handlers) UpdateHolding(c *gin.Context) {
	key := portfolio.ParseKey(c.Param("symbol_or_id"))

	var upd model.HoldingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	holding, err := h.stores.Holdings.Update(key, &upd)
	if err != nil {
		h.holdingError(c, key, err)
		return
	}

	c.JSON(http.StatusOK, HoldingView{
		Holding:   holding,
		Valuation: portfolio.ValuateHolding(holding),
	})
}

// DeleteHolding 删除持仓处理程序
func (h *Handlers) DeleteHolding(c *gin.Context) {
	key := portfolio.ParseKey(c.Param("symbol_or_id"))

	if err := h.stores.Holdings.Delete(key); err != nil {
		h.holdingError(c, key, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// holdingError 映射持仓操作错误
func (h *Handlers) holdingError(c *gin.Context, key portfolio.Key, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "持仓 " + key.String() + " 不存在",
		})
		return
	}
	h.storeError(c, err)
}

// storeError 存储层错误统一按500处理
func (h *Handlers) storeError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "存储操作失败: " + err.Error(),
	})
}
