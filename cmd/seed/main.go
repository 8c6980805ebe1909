package main

import (
	"flag"
	"log"
	"os"

	"CryptoFolio/pkg/seed"
)

func main() {
	defaultURL := os.Getenv("API_URL")
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:8000/api"
	}
	baseURL := flag.String("api", defaultURL, "API基础地址")
	flag.Parse()

	loader := seed.NewLoader(*baseURL)

	log.Println("加载示例持仓数据...")
	holdings, err := loader.LoadHoldings()
	if err != nil {
		log.Fatalf("加载持仓数据失败: %v\n", err)
	}
	log.Printf("持仓数据: 新建%d条, 跳过%d条\n", holdings.Created, holdings.Skipped)

	log.Println("加载示例情绪数据...")
	sentiments, err := loader.LoadSentiments()
	if err != nil {
		log.Fatalf("加载情绪数据失败: %v\n", err)
	}
	log.Printf("情绪数据: 新建%d条, 跳过%d条\n", sentiments.Created, sentiments.Skipped)
}
