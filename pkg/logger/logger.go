package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志初始化选项
type Options struct {
	Level     string // debug, info, warn, error
	Output    string // console, file, both
	Format    string // text, json
	FilePath  string
	Colorize  bool
	AddSource bool
}

var (
	mu            sync.RWMutex
	defaultLogger *zap.SugaredLogger
	atomicLevel   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init 根据选项初始化全局日志
func Init(opts Options) error {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	cores, err := buildCores(opts)
	if err != nil {
		return err
	}

	var zapOpts []zap.Option
	if opts.AddSource {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	atomicLevel.SetLevel(level)
	l := zap.New(zapcore.NewTee(cores...), zapOpts...)

	mu.Lock()
	defaultLogger = l.Sugar()
	mu.Unlock()

	return nil
}

func buildCores(opts Options) ([]zapcore.Core, error) {
	output := strings.ToLower(strings.TrimSpace(opts.Output))
	if output == "" {
		output = "console"
	}

	var cores []zapcore.Core

	if output == "console" || output == "both" {
		enc := newEncoder(opts.Format, opts.Colorize)
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stdout), atomicLevel))
	}

	if output == "file" || output == "both" {
		if opts.FilePath == "" {
			return nil, fmt.Errorf("log file path is required for output %q", output)
		}
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		// 文件输出不着色
		enc := newEncoder(opts.Format, false)
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(file), atomicLevel))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("unknown log output %q", opts.Output)
	}

	return cores, nil
}

func newEncoder(format string, colorize bool) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "msg"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	if strings.EqualFold(format, "json") {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}

	if colorize {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// SetLevel 动态调整日志级别
func SetLevel(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	atomicLevel.SetLevel(l)
	return nil
}

// IsDebugEnabled 当前是否输出debug日志
func IsDebugEnabled() bool {
	return atomicLevel.Enabled(zapcore.DebugLevel)
}

func get() *zap.SugaredLogger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		enc := newEncoder("text", false)
		core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), atomicLevel)
		defaultLogger = zap.New(core).Sugar()
	}
	return defaultLogger
}

// Debug 输出debug日志，args为键值对
func Debug(msg string, args ...any) {
	get().Debugw(msg, SanitizeArgs(args...)...)
}

// Info 输出info日志
func Info(msg string, args ...any) {
	get().Infow(msg, SanitizeArgs(args...)...)
}

// Warn 输出warn日志
func Warn(msg string, args ...any) {
	get().Warnw(msg, SanitizeArgs(args...)...)
}

// Error 输出error日志
func Error(msg string, args ...any) {
	get().Errorw(msg, SanitizeArgs(args...)...)
}

// Fatal 输出日志后退出进程
func Fatal(msg string, args ...any) {
	get().Fatalw(msg, SanitizeArgs(args...)...)
}

// Sync 刷新缓冲
func Sync() {
	_ = get().Sync()
}
