// pkg/database/postgres.go
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"CryptoFolio/pkg/config"
	"CryptoFolio/pkg/model"
	"CryptoFolio/pkg/repository"
)

// PostgresDB PostgreSQL数据库连接
type PostgresDB struct {
	db *gorm.DB
}

// NewPostgresDB 创建数据库连接并建表
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	dsn := cfg.Database.DSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层连接失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("测试数据库连接失败: %w", err)
	}

	// 自动迁移表结构
	if err := db.AutoMigrate(&model.Holding{}, &model.Transaction{}, &model.Sentiment{}); err != nil {
		return nil, fmt.Errorf("迁移表结构失败: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

// Close 关闭数据库连接
func (p *PostgresDB) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Stores 返回基于本连接的存储集合
func (p *PostgresDB) Stores() *repository.Stores {
	return &repository.Stores{
		Holdings:     p.Holding(),
		Transactions: p.Transaction(),
		Sentiments:   p.Sentiment(),
	}
}
