package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/vdc-display/internal/constants"
)

func TestInitWithFile(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	if err := Init(Config{Dir: logDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Info("refresh complete", "origin", "live")

	data, err := os.ReadFile(filepath.Join(logDir, constants.AppName+".log"))
	if err != nil {
		t.Fatalf("log file was not written: %v", err)
	}
	if !strings.Contains(string(data), "refresh complete") {
		t.Errorf("log file = %q, want it to contain the message", string(data))
	}
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	defer func() { stderr = old }()

	if err := Init(Config{Console: true}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	Debug("hidden at info level")
	Warn("database missing", "path", "data/logistics.db")

	out := buf.String()
	if strings.Contains(out, "hidden at info level") {
		t.Error("debug message written while debug is off")
	}
	if !strings.Contains(out, "database missing") || !strings.Contains(out, "data/logistics.db") {
		t.Errorf("console output = %q", out)
	}
}

func TestInitDebugMode(t *testing.T) {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	defer func() { stderr = old }()

	if err := Init(Config{Debug: true, Console: true}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	Debug("tick started")
	if !strings.Contains(buf.String(), "tick started") {
		t.Errorf("debug output = %q", buf.String())
	}
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	old := stderr
	stderr = &buf
	defer func() { stderr = old }()

	if err := Init(Config{Console: true}); err != nil {
		t.Fatal(err)
	}

	With("tick", "abc123").Info("rendered")
	if !strings.Contains(buf.String(), "abc123") {
		t.Errorf("output = %q, want tick field", buf.String())
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
	With("tick", "abc123").Info("dropped")
}

func TestInitWithInvalidDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Init(Config{Dir: filepath.Join(file, "logs")}); err == nil {
		t.Error("Init() should fail when the log directory cannot be created")
	}
}
