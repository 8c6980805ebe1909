// pkg/seed/seed.go
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HoldingSeed 示例持仓数据
type HoldingSeed struct {
	Symbol        string  `json:"crypto_symbol"`
	Name          string  `json:"crypto_name"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	Category      string  `json:"category"`
}

// SentimentSeed 示例情绪数据
type SentimentSeed struct {
	Symbol             string  `json:"crypto_symbol"`
	Score              float64 `json:"sentiment_score"`
	MentionCount       int     `json:"mention_count"`
	PositivePercentage float64 `json:"positive_percentage"`
	Source             string  `json:"source"`
}

// SampleHoldings 示例持仓
var SampleHoldings = []HoldingSeed{
	{Symbol: "BTC", Name: "Bitcoin", Quantity: 0.5, PurchasePrice: 45000, CurrentPrice: 52000, Category: "major"},
	{Symbol: "ETH", Name: "Ethereum", Quantity: 3, PurchasePrice: 2500, CurrentPrice: 3100, Category: "major"},
	{Symbol: "ADA", Name: "Cardano", Quantity: 1000, PurchasePrice: 0.8, CurrentPrice: 1.2, Category: "altcoin"},
	{Symbol: "SOL", Name: "Solana", Quantity: 50, PurchasePrice: 80, CurrentPrice: 120, Category: "altcoin"},
	{Symbol: "DOT", Name: "Polkadot", Quantity: 100, PurchasePrice: 25, CurrentPrice: 35, Category: "altcoin"},
	{Symbol: "LINK", Name: "Chainlink", Quantity: 50, PurchasePrice: 20, CurrentPrice: 28, Category: "utility"},
	{Symbol: "USDC", Name: "USD Coin", Quantity: 5000, PurchasePrice: 1, CurrentPrice: 1, Category: "stablecoin"},
	{Symbol: "XRP", Name: "Ripple", Quantity: 2000, PurchasePrice: 0.5, CurrentPrice: 0.75, Category: "altcoin"},
	{Symbol: "MATIC", Name: "Polygon", Quantity: 500, PurchasePrice: 1.2, CurrentPrice: 1.8, Category: "altcoin"},
	{Symbol: "AVAX", Name: "Avalanche", Quantity: 20, PurchasePrice: 100, CurrentPrice: 155, Category: "altcoin"},
}

// SampleSentiments 示例情绪
var SampleSentiments = []SentimentSeed{
	{Symbol: "BTC", Score: 0.75, MentionCount: 15000, PositivePercentage: 78, Source: "twitter"},
	{Symbol: "ETH", Score: 0.68, MentionCount: 12000, PositivePercentage: 72, Source: "twitter"},
	{Symbol: "ADA", Score: 0.45, MentionCount: 8000, PositivePercentage: 60, Source: "reddit"},
	{Symbol: "SOL", Score: 0.55, MentionCount: 10000, PositivePercentage: 65, Source: "twitter"},
	{Symbol: "DOT", Score: 0.40, MentionCount: 6000, PositivePercentage: 55, Source: "reddit"},
	{Symbol: "LINK", Score: 0.60, MentionCount: 7000, PositivePercentage: 68, Source: "twitter"},
}

// Loader 示例数据加载器，通过HTTP接口写入
type Loader struct {
	BaseURL string
	Client  *http.Client
}

// Result 加载结果统计
type Result struct {
	Created int
	Skipped int
}

// NewLoader 创建加载器
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LoadHoldings 加载示例持仓
// 服务端返回409说明符号已存在，跳过该行，重复执行不会产生新数据
func (l *Loader) LoadHoldings() (*Result, error) {
	result := &Result{}

	for _, h := range SampleHoldings {
		status, err := l.post("/portfolio", h)
		if err != nil {
			return result, fmt.Errorf("写入持仓 %s 失败: %w", h.Symbol, err)
		}

		switch status {
		case http.StatusCreated:
			result.Created++
		case http.StatusConflict:
			result.Skipped++
		default:
			return result, fmt.Errorf("写入持仓 %s 返回非预期状态码: %d", h.Symbol, status)
		}
	}

	return result, nil
}

// LoadSentiments 加载示例情绪数据
// 情绪表没有唯一约束，先查已有记录，符号加来源相同的跳过，
// 保证重复执行不追加重复行
func (l *Loader) LoadSentiments() (*Result, error) {
	existing, err := l.existingSentiments()
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, s := range SampleSentiments {
		if existing[s.Symbol+"/"+s.Source] {
			result.Skipped++
			continue
		}

		status, err := l.post("/sentiment", s)
		if err != nil {
			return result, fmt.Errorf("写入情绪数据 %s 失败: %w", s.Symbol, err)
		}

		if status != http.StatusCreated {
			return result, fmt.Errorf("写入情绪数据 %s 返回非预期状态码: %d", s.Symbol, status)
		}
		result.Created++
	}

	return result, nil
}

func (l *Loader) existingSentiments() (map[string]bool, error) {
	resp, err := l.Client.Get(l.BaseURL + "/sentiment")
	if err != nil {
		return nil, fmt.Errorf("查询已有情绪数据失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("查询已有情绪数据返回非预期状态码: %d", resp.StatusCode)
	}

	var payload struct {
		Data []SentimentSeed `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析情绪数据失败: %w", err)
	}

	existing := make(map[string]bool, len(payload.Data))
	for _, s := range payload.Data {
		existing[s.Symbol+"/"+s.Source] = true
	}
	return existing, nil
}

func (l *Loader) post(path string, payload interface{}) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("序列化请求失败: %w", err)
	}

	req, err := http.NewRequest("POST", l.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return 0, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("执行HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
