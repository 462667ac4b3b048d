package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLogFilePath(t *testing.T) {
	logPath, err := LogFilePath("pleat-demo")
	if err != nil {
		t.Fatalf("LogFilePath failed: %v", err)
	}

	if logPath == "" {
		t.Error("LogFilePath returned empty path")
	}
	if !filepath.IsAbs(logPath) {
		t.Errorf("LogFilePath returned relative path: %s", logPath)
	}

	homeDir, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		expected := filepath.Join(homeDir, "Library", "Logs", "pleat-demo", "pleat-demo.log")
		if logPath != expected {
			t.Errorf("macOS path mismatch: got %s, want %s", logPath, expected)
		}
	case "linux":
		expected := filepath.Join(homeDir, ".local", "state", "pleat-demo", "pleat-demo.log")
		if logPath != expected {
			t.Errorf("Linux path mismatch: got %s, want %s", logPath, expected)
		}
	}
}

func TestInitLogger(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}

	tests := []struct {
		name  string
		debug bool
	}{
		{"info level", false},
		{"debug level", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := InitLogger("pleat-test", tt.debug)
			if err != nil {
				t.Fatalf("InitLogger failed: %v", err)
			}
			if logger == nil {
				t.Fatal("InitLogger returned nil logger")
			}

			logPath, _ := LogFilePath("pleat-test")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("log file was not created at %s", logPath)
			}

			logger.Info("test message", slog.String("key", "value"))
			logger.Debug("debug message")
		})
	}
}

func TestInitLogger_CreatesDirectoryAndWrites(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", tmpDir)
		t.Setenv("LOCALAPPDATA", filepath.Join(tmpDir, "AppData", "Local"))
	}

	logger, err := InitLogger("pleat-test", false)
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	logPath, _ := LogFilePath("pleat-test")
	if info, err := os.Stat(filepath.Dir(logPath)); err != nil {
		t.Errorf("log directory was not created: %v", err)
	} else if !info.IsDir() {
		t.Errorf("log path exists but is not a directory: %s", filepath.Dir(logPath))
	}

	logger.Info("message after directory creation")

	if info, err := os.Stat(logPath); err != nil {
		t.Errorf("log file was not created: %v", err)
	} else if info.Size() == 0 {
		t.Error("log file is empty after writing message")
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	if logger == nil {
		t.Fatal("NewNopLogger returned nil")
	}

	// Must never panic, whatever the level.
	logger.Debug("test debug")
	logger.Info("test info")
	logger.Warn("test warn")
	logger.Error("test error")
}
