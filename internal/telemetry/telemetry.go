// Package telemetry sets up structured logging and OpenTelemetry providers.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// ServiceName identifies this service in traces and metrics.
const ServiceName = "leguide"

// ServiceVersion is reported by the chat API and on the telemetry resource.
const ServiceVersion = "1.0.0"

func rotatingFile(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // 10 MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}, nil
}

// InitLogger installs a JSON slog logger writing to a rotating file at path,
// and to stdout too when alsoStdout is set. The returned closer closes the file.
func InitLogger(path string, alsoStdout bool, level slog.Level) (*slog.Logger, io.Closer, error) {
	file, err := rotatingFile(path)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = file
	if alsoStdout {
		out = io.MultiWriter(os.Stdout, file)
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, file, nil
}

// InitTelemetry sets up tracer and meter providers that export to rotating
// files under dir. Metrics are flushed every 10 seconds and on cleanup.
func InitTelemetry(ctx context.Context, dir string) (trace.Tracer, metric.Meter, func(), error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceFile, err := rotatingFile(filepath.Join(dir, ServiceName+"_traces.log"))
	if err != nil {
		return nil, nil, nil, err
	}
	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(traceFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	metricsFile, err := rotatingFile(filepath.Join(dir, ServiceName+"_metrics.log"))
	if err != nil {
		return nil, nil, nil, err
	}
	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(metricsFile))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				metricExporter,
				sdkmetric.WithInterval(10*time.Second),
			),
		),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown tracer provider", "error", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown meter provider", "error", err)
		}
		if err := traceFile.Close(); err != nil {
			slog.Error("failed to close trace file", "error", err)
		}
		if err := metricsFile.Close(); err != nil {
			slog.Error("failed to close metrics file", "error", err)
		}
	}

	return tp.Tracer(ServiceName), mp.Meter(ServiceName), cleanup, nil
}

// Noop returns a tracer and meter that record nothing.
func Noop() (trace.Tracer, metric.Meter) {
	return tracenoop.NewTracerProvider().Tracer(ServiceName), metricnoop.NewMeterProvider().Meter(ServiceName)
}

// ChatMetrics holds the instruments recorded by the chat transports.
type ChatMetrics struct {
	Requests    metric.Int64Counter
	RateLimited metric.Int64Counter
}

// NewChatMetrics creates the chat instruments on meter.
func NewChatMetrics(meter metric.Meter) (*ChatMetrics, error) {
	requests, err := meter.Int64Counter("chat.requests",
		metric.WithDescription("Chat requests by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("create chat.requests counter: %w", err)
	}
	limited, err := meter.Int64Counter("chat.rate_limited",
		metric.WithDescription("Chat requests rejected by the rate limiter"),
	)
	if err != nil {
		return nil, fmt.Errorf("create chat.rate_limited counter: %w", err)
	}
	return &ChatMetrics{Requests: requests, RateLimited: limited}, nil
}
