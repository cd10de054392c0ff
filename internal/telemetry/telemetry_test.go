package telemetry

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mtg-price-tracker/internal/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), &config.TelemetryConfig{}, "test", quietLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewResource(t *testing.T) {
	t.Parallel()

	res, err := newResource("mtg-price-tracker", "v1.2.3")
	require.NoError(t, err)

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "mtg-price-tracker", attrs["service.name"])
	assert.Equal(t, "v1.2.3", attrs["service.version"])
}

func TestNewExporter_IsLazy(t *testing.T) {
	t.Parallel()

	// The gRPC client dials lazily, so an unreachable collector does not
	// fail construction.
	exp, err := newExporter(context.Background(), &config.TelemetryConfig{
		OTLPEndpoint: "127.0.0.1:1",
		Insecure:     true,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = exp.Shutdown(ctx)
}
