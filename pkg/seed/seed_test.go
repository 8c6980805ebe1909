package seed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"CryptoFolio/pkg/api"
	"CryptoFolio/pkg/config"
	"CryptoFolio/pkg/repository"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer() *httptest.Server {
	cfg := &config.Config{}
	cfg.App.Name = "CryptoFolio API"
	cfg.API.Host = "127.0.0.1"
	cfg.API.Port = "0"

	stores := repository.NewMemoryStore().Stores()
	handlers := api.NewHandlers(stores, cfg.App.Name)
	server := api.NewServer(cfg)
	server.SetupRoutes(handlers)

	return httptest.NewServer(server.Router())
}

func countHoldings(t *testing.T, baseURL string) int {
	t.Helper()

	resp, err := http.Get(baseURL + "/portfolio")
	if err != nil {
		t.Fatalf("查询持仓失败: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Holdings []json.RawMessage `json:"holdings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("解析持仓列表失败: %v", err)
	}
	return len(payload.Holdings)
}

func countSentiments(t *testing.T, baseURL string) int {
	t.Helper()

	resp, err := http.Get(baseURL + "/sentiment")
	if err != nil {
		t.Fatalf("查询情绪失败: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("解析情绪列表失败: %v", err)
	}
	return len(payload.Data)
}

func TestLoadHoldings(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	loader := NewLoader(srv.URL + "/api")

	result, err := loader.LoadHoldings()
	if err != nil {
		t.Fatalf("首次加载失败: %v", err)
	}
	if result.Created != len(SampleHoldings) || result.Skipped != 0 {
		t.Errorf("首次加载: 新建%d 跳过%d, 期望 新建%d 跳过0",
			result.Created, result.Skipped, len(SampleHoldings))
	}
	if got := countHoldings(t, srv.URL+"/api"); got != len(SampleHoldings) {
		t.Errorf("持仓数 = %d, 期望 %d", got, len(SampleHoldings))
	}
}

func TestLoadTwiceIsIdempotent(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	loader := NewLoader(srv.URL + "/api")

	if _, err := loader.LoadHoldings(); err != nil {
		t.Fatalf("首次加载持仓失败: %v", err)
	}
	if _, err := loader.LoadSentiments(); err != nil {
		t.Fatalf("首次加载情绪失败: %v", err)
	}

	holdingsBefore := countHoldings(t, srv.URL+"/api")
	sentimentsBefore := countSentiments(t, srv.URL+"/api")

	// 重复加载：持仓全部409跳过，情绪全部按已有记录跳过
	h2, err := loader.LoadHoldings()
	if err != nil {
		t.Fatalf("二次加载持仓失败: %v", err)
	}
	if h2.Created != 0 || h2.Skipped != len(SampleHoldings) {
		t.Errorf("二次加载持仓: 新建%d 跳过%d, 期望 新建0 跳过%d",
			h2.Created, h2.Skipped, len(SampleHoldings))
	}

	s2, err := loader.LoadSentiments()
	if err != nil {
		t.Fatalf("二次加载情绪失败: %v", err)
	}
	if s2.Created != 0 {
		t.Errorf("二次加载情绪新建了%d条, 期望 0", s2.Created)
	}

	if got := countHoldings(t, srv.URL+"/api"); got != holdingsBefore {
		t.Errorf("二次加载后持仓数 %d -> %d, 应保持不变", holdingsBefore, got)
	}
	if got := countSentiments(t, srv.URL+"/api"); got != sentimentsBefore {
		t.Errorf("二次加载后情绪数 %d -> %d, 应保持不变", sentimentsBefore, got)
	}
}
