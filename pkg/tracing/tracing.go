// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package tracing installs the OpenTelemetry tracer provider used by envelope scopes.
package tracing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Options struct {
	ServiceName string
	// ZipkinURL is the collector endpoint, e.g. http://localhost:9411/api/v2/spans. Empty disables export.
	ZipkinURL string
	// SampleRatio in [0,1]; values outside are clamped by the sampler.
	SampleRatio float64
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Setup registers a global tracer provider and the B3 + W3C trace context propagators.
func Setup(opts Options) (*sdktrace.TracerProvider, ShutdownFunc, error) {
	if opts.ServiceName == "" {
		opts.ServiceName = "court-allocator"
	}

	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", opts.ServiceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
	}

	if opts.ZipkinURL != "" {
		exporter, err := zipkin.New(opts.ZipkinURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create zipkin exporter: %w", err)
		}
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exporter))
	} else {
		logrus.WithField("service", opts.ServiceName).Debug("tracing export disabled")
	}

	provider := sdktrace.NewTracerProvider(providerOpts...)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)),
		propagation.TraceContext{},
	))

	return provider, provider.Shutdown, nil
}
