package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	logger, f := setupLogging(false)
	if f != nil {
		f.Close()
		t.Fatal("expected no log file without debug")
	}
	logger.Info("discarded")
	if slog.Default() != logger {
		t.Error("default logger not replaced")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	logger, f := setupLogging(true)
	if f == nil {
		t.Fatal("expected a log file with debug")
	}
	defer f.Close()

	logger.Debug("phase change", "phase", "Playing")

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}
