package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ogurasousui/staffing-workflow/internal/platform/config"
)

func TestNew_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(config.LogConfig{Format: config.LogFormatJSON}, &buf)
	logger.Info("notice approved", "employee_number", 7)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "notice approved" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["employee_number"] != float64(7) {
		t.Fatalf("unexpected attribute: %v", entry["employee_number"])
	}
}

func TestNew_TextFormatRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(config.LogConfig{Format: config.LogFormatText}, &buf)
	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug log should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "msg=visible") {
		t.Fatalf("expected text output, got %q", out)
	}
}
