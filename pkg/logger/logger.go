// Package logger 提供基于zap的结构化日志
//
// 设计说明：
// 1. 使用zap而非fmt/log：结构化字段便于检索，性能开销低
// 2. 通过Init从配置初始化全局Logger，业务代码直接调用logger.L()
// 3. console格式用于开发环境，json格式用于生产环境（对接ELK/Loki）
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// global 全局Logger实例
// 默认是zap.NewNop()，保证未初始化时调用方不会panic（如单元测试）
var global = zap.NewNop()

// Init 根据配置初始化全局Logger
//
// 参数：
//
//	level:  debug | info | warn | error
//	format: console | json
func Init(level, format string) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("无效的日志级别 %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = "json"
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return fmt.Errorf("构建Logger失败: %w", err)
	}

	global = l
	return nil
}

// L 返回全局Logger
func L() *zap.Logger {
	return global
}

// Sync 刷新缓冲的日志（进程退出前调用）
func Sync() {
	_ = global.Sync()
}
