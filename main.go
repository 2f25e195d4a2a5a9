package main

import (
	"fmt"
	"os"
	"strings"

	"homeledger/config"
	"homeledger/database"
	"homeledger/logger"
	"homeledger/middleware"
	"homeledger/router"

	"github.com/spf13/cobra"
)

// @title 家庭账本 API
// @version 1.0
// @description 家庭收支与分期账本：账目分期、分期对账、月度与年度统计
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile string
	port       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "homeledger",
		Short:   "家庭账本服务",
		Version: version,
		RunE:    runServe,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "外部配置文件路径（可选）")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "监听端口，如: 8080 或 :8080")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务（默认命令）",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "监听端口，如: 8080 或 :8080")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "迁移表结构并写入默认类别",
		RunE:  runMigrate,
	}

	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	config.PrintConfig()

	appLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer appLog.Sync()

	db, err := database.Init(cfg)
	if err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, db, appLog)

	appLog.Info("家庭账本已启动",
		"addr", cfg.Server.Port,
		"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Server.Port),
		"api", fmt.Sprintf("http://localhost%s/api/v1/", cfg.Server.Port),
	)

	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("服务器启动失败: %w", err)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	appLog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer appLog.Sync()

	if _, err := database.Init(cfg); err != nil {
		return fmt.Errorf("迁移失败: %w", err)
	}
	appLog.Info("迁移完成", "driver", cfg.Database.Driver)
	return nil
}
