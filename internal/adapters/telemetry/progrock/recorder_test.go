package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vitoprogrock "github.com/vito/progrock"

	"go.weft.dev/weft"
	"go.weft.dev/weft/internal/adapters/telemetry/progrock"
)

func TestRecorderSatisfiesTelemetry(t *testing.T) {
	var _ weft.Telemetry = progrock.New(vitoprogrock.NewTape())
}

func TestRecorderStartDoneAndCached(t *testing.T) {
	rec := progrock.New(vitoprogrock.NewTape())

	span := rec.Start(context.Background(), "cup-of-tea")
	require.NotPanics(t, func() { span.Cached() })
	require.NotPanics(t, func() { span.Done(nil) })
}

func TestRecorderStartDoneWithError(t *testing.T) {
	rec := progrock.New(vitoprogrock.NewTape())

	span := rec.Start(context.Background(), "cup")
	require.NotPanics(t, func() { span.Done(assert.AnError) })
}

func TestRecorderCloseWithoutCloser(t *testing.T) {
	rec := progrock.New(vitoprogrock.NewTape())
	require.NoError(t, rec.Close())
}
