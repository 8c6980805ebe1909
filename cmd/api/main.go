package main

import (
	"flag"
	"log"

	"CryptoFolio/pkg/api"
	"CryptoFolio/pkg/config"
	"CryptoFolio/pkg/database"
	"CryptoFolio/pkg/repository"
)

func main() {
	configPath := flag.String("config", config.GetDefaultConfigPath(), "配置文件路径")
	flag.Parse()

	log.Println("启动API服务...")

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v\n", err)
	}

	// 根据配置选择存储实现
	var stores *repository.Stores
	switch cfg.Database.Driver {
	case "memory":
		log.Println("使用内存存储（开发模式，数据不持久化）")
		stores = repository.NewMemoryStore().Stores()
	case "postgres":
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("初始化数据库失败: %v\n", err)
		}
		defer db.Close()
		stores = db.Stores()
	default:
		log.Fatalf("未知的存储驱动: %s\n", cfg.Database.Driver)
	}

	// 创建API处理程序
	handlers := api.NewHandlers(stores, cfg.App.Name)

	// 创建并启动服务器
	server := api.NewServer(cfg)
	server.SetupRoutes(handlers)
	server.Start()
}
