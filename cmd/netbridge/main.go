// Package main 提供 netbridge 命令行入口
//
// 启动入站请求多路复用器和桥接器。没有接入真实子系统时，
// 所有请求只记录日志并取消，用于检查通道配置和合并流行为。
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-netbridge/config"
	"github.com/dep2p/go-netbridge/internal/bridge"
	"github.com/dep2p/go-netbridge/internal/bridge/multiplexer"
	"github.com/dep2p/go-netbridge/internal/reqresp"
	"github.com/dep2p/go-netbridge/pkg/lib/log"
)

var logger = log.Logger("netbridge/cmd")

var (
	configFile  = flag.String("config", "", "配置文件路径（JSON）")
	logLevel    = flag.String("log-level", "", "日志级别 (debug/info/warn/error)，覆盖配置文件")
	listConfigs = flag.Bool("list", false, "以 JSON 输出出站通道配置后退出")
	printConfig = flag.Bool("print-config", false, "输出生效的配置后退出")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("配置错误: %w", err)
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return fmt.Errorf("日志设置失败: %w", err)
	}
	defer closeLog()

	if *printConfig {
		return printEffectiveConfig(os.Stdout, cfg)
	}
	if *listConfigs {
		return printChannelConfigs(os.Stdout, cfg)
	}

	app := fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.Supply(cfg),
		fx.Provide(newLoggingRouter, newLoggingReporter),
		bridge.Module(),
		fx.Invoke(registerWithheldDrains),
		fx.Invoke(func(cfgs []reqresp.Config) {
			logger.Info("出站通道配置已就绪", "count", len(cfgs))
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("启动失败: %w", err)
	}

	logger.Info("netbridge 已启动，按 Ctrl+C 退出")
	waitForSignal()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	return app.Stop(stopCtx)
}

// loadConfig 读取配置文件并应用命令行覆盖
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging 按配置设置日志输出，返回清理函数
func setupLogging(c config.LogConfig) (func(), error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	if c.Format == "json" {
		log.SetJSONOutput(w, level)
	} else {
		log.SetOutputWithLevel(w, level)
	}
	return closeFn, nil
}

// printEffectiveConfig 输出合并默认值和命令行覆盖之后的配置
func printEffectiveConfig(w io.Writer, cfg *config.Config) error {
	data, err := config.ToJSON(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// channelInfo -list 输出的通道描述
type channelInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Pooled          bool   `json:"pooled"`
	MaxRequestSize  uint64 `json:"max_request_size"`
	MaxResponseSize uint64 `json:"max_response_size"`
	RequestTimeout  string `json:"request_timeout"`
	QueueSize       int    `json:"queue_size"`
}

// printChannelConfigs 以 JSON 输出应用配置后的全部出站通道配置
func printChannelConfigs(w io.Writer, cfg *config.Config) error {
	bcfg := bridge.ConfigFromUnified(cfg)
	m, cfgs := multiplexer.New(multiplexer.WithLimits(bcfg.Limits))
	defer func() { _ = m.Close() }()

	pooled := make(map[reqresp.Protocol]bool)
	for _, p := range m.Protocols() {
		pooled[p] = true
	}

	out := make([]channelInfo, 0, len(cfgs))
	for _, c := range cfgs {
		out = append(out, channelInfo{
			Name:            c.Name.String(),
			Version:         c.Name.Version(),
			Pooled:          pooled[c.Protocol],
			MaxRequestSize:  c.MaxRequestSize,
			MaxResponseSize: c.MaxResponseSize,
			RequestTimeout:  c.RequestTimeout.String(),
			QueueSize:       c.QueueSize,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// waitForSignal 等待退出信号
func waitForSignal() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
}
