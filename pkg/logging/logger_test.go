package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}

	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(DevelopmentConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug level to be enabled in development config")
	}

	if _, err := NewLogger(Config{Level: "info", Format: "xml", OutputPaths: []string{"stderr"}}); err == nil {
		t.Error("Expected unknown encoding to fail")
	}
}

func TestNewLoggerFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "console")

	logger, err := NewLoggerFromEnv()
	if err != nil {
		t.Fatalf("NewLoggerFromEnv failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info to be disabled at warn level")
	}
}

func TestGlobal(t *testing.T) {
	if L() == nil {
		t.Fatal("Expected a default global logger")
	}

	prev := L()
	defer SetGlobal(prev)

	named := NewNoOpLogger().Named("test")
	SetGlobal(named)
	if L() != named {
		t.Error("SetGlobal did not replace the global logger")
	}
}
