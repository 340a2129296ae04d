// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/AccelByte/extend-court-allocator/pkg/envelope"
)

func TestSetupWithoutExporter(t *testing.T) {
	provider, shutdown, err := Setup(Options{SampleRatio: 1})
	require.NoError(t, err)
	require.NotNil(t, provider)
	defer func() { assert.NoError(t, shutdown(context.Background())) }()

	scope := envelope.NewRootScope(context.Background(), "test", "")
	defer scope.Finish()

	// sampled root span carries the sdk generated trace id
	assert.Len(t, scope.TraceID, 32)
	assert.NotEmpty(t, otel.GetTextMapPropagator().Fields())
}

func TestSetupWithZipkin(t *testing.T) {
	_, shutdown, err := Setup(Options{ServiceName: "svc", ZipkinURL: "http://localhost:9411/api/v2/spans"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupWithInvalidZipkinURL(t *testing.T) {
	_, _, err := Setup(Options{ZipkinURL: "://bad"})
	assert.Error(t, err)
}
