package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Phase is the lifecycle of a single orchestration invocation.
type Phase string

const (
	PhaseValidating Phase = "validating"
	PhaseCalling    Phase = "calling"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

type instrumentation struct {
	service         string
	logger          Logger
	metricsRecorder MetricsRecorder
}

func (i instrumentation) observeOperation(
	ctx context.Context,
	startedAt time.Time,
	operation string,
	phase Phase,
	err error,
	fields map[string]any,
) {
	operation = normalizeOperation(operation)
	if operation == "" {
		operation = "unknown"
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	elapsed := time.Since(startedAt).Milliseconds()

	contextFields := cloneFields(fields)
	contextFields["service"] = i.service
	contextFields["operation"] = operation
	contextFields["phase"] = string(phase)
	contextFields["status"] = status
	contextFields["duration_ms"] = elapsed
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		contextFields["request_id"] = requestID
	}
	if err != nil {
		contextFields["error"] = err.Error()
		if kind, ok := KindOf(err); ok {
			contextFields["error_kind"] = string(kind)
		}
	}

	tags := map[string]string{
		"operation": operation,
		"status":    status,
		"phase":     string(phase),
	}
	for _, key := range []string{"error_kind", "failure"} {
		if value := strings.TrimSpace(fmt.Sprint(contextFields[key])); value != "" && value != "<nil>" {
			tags[key] = value
		}
	}

	i.recordCounter(ctx, "catalog."+operation+".total", 1, tags)
	i.recordHistogram(ctx, "catalog."+operation+".duration_ms", float64(elapsed), tags)

	if err != nil {
		i.logWithLevel(ctx, "error", operation+" failed", contextFields)
		return
	}
	i.logWithLevel(ctx, "info", operation+" succeeded", contextFields)
}

func (i instrumentation) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if i.logger == nil {
		return
	}
	logger := i.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(fields))
	}
	args := flattenFields(fields)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.Error(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func (i instrumentation) recordCounter(ctx context.Context, name string, value int64, tags map[string]string) {
	if i.metricsRecorder == nil {
		return
	}
	i.metricsRecorder.IncCounter(ctx, strings.TrimSpace(name), value, cloneTags(tags))
}

func (i instrumentation) recordHistogram(ctx context.Context, name string, value float64, tags map[string]string) {
	if i.metricsRecorder == nil {
		return
	}
	i.metricsRecorder.ObserveHistogram(ctx, strings.TrimSpace(name), value, cloneTags(tags))
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}

func normalizeOperation(operation string) string {
	operation = strings.TrimSpace(strings.ToLower(operation))
	operation = strings.ReplaceAll(operation, " ", "_")
	operation = strings.ReplaceAll(operation, "-", "_")
	return operation
}

type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}

func cloneTags(tags map[string]string) map[string]string {
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	return copied
}
