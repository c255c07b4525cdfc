package gologger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-catalog/core"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

func TestResolveDeterministicFallback(t *testing.T) {
	loggerOnly := &capturingLogger{id: "logger"}
	providerLogger := &capturingLogger{id: "provider"}
	provider := &capturingProvider{logger: providerLogger}

	var resolvedProvider glog.LoggerProvider
	_, resolved := Resolve("catalog", provider, loggerOnly)
	got := resolved.(*capturingLogger)
	if got.id != "provider" {
		t.Fatalf("expected provider logger precedence, got %q", got.id)
	}

	resolvedProvider, resolved = Resolve("catalog", nil, loggerOnly)
	got = resolved.(*capturingLogger)
	if got.id != "logger" {
		t.Fatalf("expected direct logger when provider is nil, got %q", got.id)
	}
	if resolvedProvider == nil {
		t.Fatalf("expected provider wrapper from logger")
	}

	_, resolved = Resolve("catalog", nil, nil)
	if resolved == nil {
		t.Fatalf("expected nop logger fallback")
	}
}

func TestNew_JSONRecordsCarryFieldsAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", "json", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	ctx := core.ContextWithRequestID(context.Background(), "req-7")
	logger.WithContext(ctx).(glog.FieldsLogger).
		WithFields(map[string]any{"operation": "obtain_product"}).
		Info("obtain_product succeeded", "key", "4")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record %q: %v", buf.String(), err)
	}
	if record["msg"] != "obtain_product succeeded" || record["level"] != "INFO" {
		t.Fatalf("unexpected record %#v", record)
	}
	if record["request_id"] != "req-7" || record["operation"] != "obtain_product" || record["key"] != "4" {
		t.Fatalf("expected request id and fields, got %#v", record)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", "text", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("quiet")
	logger.Debug("quieter")
	logger.Warn("loud", "status", 404)

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("expected info and debug to be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=loud") || !strings.Contains(out, "status=404") {
		t.Fatalf("expected warn record, got %q", out)
	}
}

func TestNew_RejectsUnknownLevelAndFormat(t *testing.T) {
	if _, err := New("chatty", "text", nil); !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input level error, got %v", err)
	}
	if _, err := New("info", "xml", nil); !goerrors.IsCategory(err, goerrors.CategoryBadInput) {
		t.Fatalf("expected bad input format error, got %v", err)
	}
}

func TestProvider_TagsComponentName(t *testing.T) {
	var buf bytes.Buffer
	root, err := New("info", "text", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	NewProvider(root).GetLogger("catalog.remote").Info("exchange")
	if !strings.Contains(buf.String(), "logger=catalog.remote") {
		t.Fatalf("expected component tag, got %q", buf.String())
	}
}

var (
	_ glog.Logger         = (*capturingLogger)(nil)
	_ glog.LoggerProvider = (*capturingProvider)(nil)
)

type capturingProvider struct {
	logger *capturingLogger
}

func (p *capturingProvider) GetLogger(string) glog.Logger {
	if p == nil || p.logger == nil {
		return glog.Nop()
	}
	return p.logger
}

type capturingLogger struct {
	id string
}

func (l *capturingLogger) Trace(string, ...any) {}
func (l *capturingLogger) Debug(string, ...any) {}
func (l *capturingLogger) Info(string, ...any)  {}
func (l *capturingLogger) Warn(string, ...any)  {}
func (l *capturingLogger) Error(string, ...any) {}
func (l *capturingLogger) Fatal(string, ...any) {}

func (l *capturingLogger) WithContext(context.Context) glog.Logger {
	return l
}
