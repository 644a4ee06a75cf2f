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

	"expensewise/api"
	"expensewise/config"
	"expensewise/database"
	"expensewise/events"
	"expensewise/logger"
	"expensewise/router"
	"expensewise/service"
)

// @title ExpenseWise API
// @version 1.0
// @description 个人收支记账 API：收支记录、分类月度预算、仪表盘统计与数据导出
// @host localhost:5000
// @BasePath /api

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 5000 或 :5000")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("expensewise v%s\n", version)
		return
	}

	// 加载配置（内置配置 + 可选的外部配置 + 环境变量）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		cfg.Server.Port = config.NormalizePort(port)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Component: "server"})
	logger.SetDefault(log)
	config.PrintConfig()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 初始化存储
	st, err := database.Open(ctx, cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Warn("close store failed", "error", err)
		}
	}()

	// 变更事件
	var publisher events.Publisher = events.Nop{}
	if cfg.AMQP.Enabled {
		p, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Warn("amqp unavailable, events disabled", "error", err)
		} else {
			publisher = p
			log.Info("publishing events", "exchange", cfg.AMQP.Exchange)
		}
	}
	defer publisher.Close()

	// 预算超支邮件提醒
	var alerts *service.BudgetAlerter
	if cfg.Email.Enabled && cfg.Email.AlertTo != "" {
		alerts = service.NewBudgetAlerter(st, service.NewEmailService(&cfg.Email), cfg.Email.AlertTo)
		log.Info("budget alerts enabled", "to", cfg.Email.AlertTo)
	}

	r := router.SetupRouter(cfg, api.Deps{
		Store:  st,
		Events: publisher,
		Alerts: alerts,
		Logger: log.WithComponent("http"),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started",
			"addr", cfg.Server.Port,
			"api", fmt.Sprintf("http://localhost%s%s", cfg.Server.Port, cfg.Server.BasePath),
			"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", cfg.Server.Port),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
