package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/easayliu/yadisk-relay/internal/application/container"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/config"
	"github.com/easayliu/yadisk-relay/internal/interfaces/http/routes"
	"github.com/easayliu/yadisk-relay/pkg/logger"
)

// flagBindings 命令行参数到配置键的映射
var flagBindings = map[string]string{
	"host":      "server.host",
	"port":      "server.port",
	"mode":      "server.mode",
	"log-level": "log.level",
	"token":     "yandex.token",
}

var configFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "yadisk-relay",
		Short:         "Relay public Yandex.Disk shares over HTTP.",
		Long:          "yadisk-relay lists public Yandex.Disk folders, relays single files and packs selections into files.zip.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.NewViper(configFile)
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the configuration file (default is ./configs/config.yaml or ./config.yaml)")

	flags := cmd.Flags()
	flags.String("host", "", "listen host")
	flags.StringP("port", "p", "", "listen port")
	flags.String("mode", "", "gin mode: debug, release, test")
	flags.StringP("log-level", "l", "", "log level: debug, info, warn, error")
	flags.String("token", "", "Yandex.Disk OAuth token")

	return cmd
}

// bindFlags 只有显式传入的参数才覆盖配置文件和环境变量
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagBindings {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Execute 运行根命令，收到SIGINT/SIGTERM时优雅退出
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// 初始化日志
	if err := logger.Init(logger.Options{
		Level:     cfg.Log.Level,
		Output:    cfg.Log.Output,
		Format:    cfg.Log.Format,
		FilePath:  cfg.Log.FilePath,
		Colorize:  cfg.Log.Colorize,
		AddSource: cfg.Log.AddSource,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	// 初始化服务容器
	serviceContainer := container.NewServiceContainer(cfg)
	defer serviceContainer.Shutdown()

	// 初始化路由
	router, err := routes.SetupRoutesWithContainer(cfg, serviceContainer)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
