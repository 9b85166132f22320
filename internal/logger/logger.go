// Package logger provides structured JSON logging and run metrics for the
// results exporter.
//
// The logger supports multiple log levels (DEBUG, INFO, WARN, ERROR) and
// writes one JSON object per line, each with a timestamp and optional
// structured fields. Output goes to standard error by default so exported
// data and summary lines keep standard output to themselves.
//
// Metrics cover what a batch run records: counters (incrementing values,
// e.g. urls_failed) and timings (duration measurements with min/max/average
// aggregation).
//
// Example usage:
//
//	logger.Info("wrote results", logger.Fields{
//	    "url":  url,
//	    "rows": n,
//	})
//
//	logger.Error("url failed", logger.Fields{
//	    "run_id": runID,
//	    "url":    url,
//	}, err)
//
//	logger.IncrCounter("urls_failed")
//	logger.RecordTiming("fetch", elapsed)
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger provides structured logging
type Logger struct {
	minLevel Level
	output   io.Writer
}

// Fields represents structured log fields
type Fields map[string]interface{}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(LevelInfo, os.Stderr)
}

// New creates a new logger with the specified minimum log level and output
// destination. Messages below the minimum level are discarded.
func New(level Level, output io.Writer) *Logger {
	return &Logger{
		minLevel: level,
		output:   output,
	}
}

// SetDefault sets the default package-level logger used by the convenience
// functions (Debug, Info, Warn, Error).
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// log writes a structured log entry
func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// Fallback to plain text if JSON marshal fails
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// shouldLog determines if a message should be logged based on level
func (l *Logger) shouldLog(level Level) bool {
	levels := map[Level]int{
		LevelDebug: 0,
		LevelInfo:  1,
		LevelWarn:  2,
		LevelError: 3,
	}
	return levels[level] >= levels[l.minLevel]
}

// Debug logs a debug message with optional structured fields.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs an informational message with optional structured fields.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a warning message with optional structured fields.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs an error message with optional structured fields and the error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using default logger

// Debug logs a debug message with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning message with the default logger
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs an error message with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Metrics tracks run metrics. All operations are thread-safe.
//
// Counters track incrementing values (e.g., urls processed).
// Timings track durations and compute min/max/average statistics.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

var defaultMetrics *Metrics

func init() {
	defaultMetrics = NewMetrics()
}

// NewMetrics creates a new metrics tracker with empty counters and timings.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1, initializing it on first use.
// Thread-safe.
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// AddCounter adds delta to a counter, initializing it on first use.
// Thread-safe.
func (m *Metrics) AddCounter(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

// RecordTiming records a duration measurement. Statistics (count, total,
// average, min, max) are computed in GetSnapshot. Thread-safe.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], duration)
}

// GetSnapshot returns a snapshot of all metrics as a map containing:
//   - "counters": map of counter names to values
//   - "timings": map of timing names to statistics (count, total, average, min, max)
//
// The snapshot is a deep copy, safe to use concurrently with metric updates.
func (m *Metrics) GetSnapshot() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make(map[string]interface{})

	counters := make(map[string]int64)
	for k, v := range m.counters {
		counters[k] = v
	}
	snapshot["counters"] = counters

	timings := make(map[string]map[string]interface{})
	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}

		var total time.Duration
		min := durations[0]
		max := durations[0]

		for _, d := range durations {
			total += d
			if d < min {
				min = d
			}
			if d > max {
				max = d
			}
		}

		timings[name] = map[string]interface{}{
			"count":   len(durations),
			"total":   total.String(),
			"average": (total / time.Duration(len(durations))).String(),
			"min":     min.String(),
			"max":     max.String(),
		}
	}
	snapshot["timings"] = timings

	return snapshot
}

// Package-level metrics functions using the default metrics tracker

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// AddCounter adds delta to a counter on the default metrics tracker.
func AddCounter(name string, delta int64) {
	defaultMetrics.AddCounter(name, delta)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, duration time.Duration) {
	defaultMetrics.RecordTiming(name, duration)
}

// GetMetricsSnapshot returns a snapshot of all metrics from the default tracker.
func GetMetricsSnapshot() map[string]interface{} {
	return defaultMetrics.GetSnapshot()
}
