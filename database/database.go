package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"homeledger/config"
	"homeledger/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 根据配置打开数据库连接
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" {
		// sqlite 单写者，避免 database is locked
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
		sqlDB.SetMaxOpenConns(100) // 最大打开连接数
	}

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=UTC",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
		return sqlite.Open(cfg.Path + "?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// Migrate 自动迁移数据库表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Home{},
		&models.Member{},
		&models.Category{},
		&models.Transaction{},
		&models.Installment{},
		&models.Invite{},
	)
}

// SeedCategories 初始化默认类别（仅当表为空时）
func SeedCategories(db *gorm.DB) error {
	var catCount int64
	if err := db.Model(&models.Category{}).Count(&catCount).Error; err != nil {
		return err
	}
	if catCount > 0 {
		return nil
	}

	// 默认类别对应的颜色（与前端保持一致）
	colorMap := map[string]string{
		models.CategoryFood:      "#ef4444",
		models.CategoryTransport: "#3b82f6",
		models.CategoryHousing:   "#14b8a6",
		models.CategoryUtilities: "#a855f7",
		models.CategoryMedical:   "#10b981",
		models.CategoryEducation: "#f59e0b",
		models.CategorySalary:    "#22c55e",
	}
	var cats []models.Category
	for i, name := range models.GetCategories() {
		color := colorMap[name]
		if color == "" {
			color = "#64748b" // 默认灰色
		}
		cats = append(cats, models.Category{
			Name:  name,
			Sort:  (i + 1) * 10,
			Color: color,
		})
	}
	return db.Create(&cats).Error
}

// Init 初始化数据库连接、迁移表结构并写入默认数据
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("迁移数据库失败: %w", err)
	}

	if err := SeedCategories(db); err != nil {
		return nil, fmt.Errorf("初始化默认类别失败: %w", err)
	}

	log.Println("数据库初始化成功")
	return db, nil
}
