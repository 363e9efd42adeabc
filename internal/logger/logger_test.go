package logger

import (
	"log/slog"
	"testing"
)

func TestInitializeDefaults(t *testing.T) {
	Initialize()

	if GetLogger() == nil {
		t.Fatal("Logger should be initialized")
	}
	if GetFormat() != "text" && GetFormat() != "json" {
		t.Errorf("Unexpected log format %q", GetFormat())
	}
}

func TestQuiet(t *testing.T) {
	Quiet()

	if GetLevel() != slog.LevelError {
		t.Errorf("Expected level ERROR after Quiet, got %v", GetLevel())
	}
	if GetLogger() == nil {
		t.Fatal("Logger should still be usable after Quiet")
	}
}
