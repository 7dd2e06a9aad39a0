package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/varstars/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext without logger returns default", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	})

	t.Run("WithLogger stores logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		logging.FromContext(ctx).Info().Msg("from context")
		tl.AssertContains(t, "from context")
	})

	t.Run("WithCatalog and WithStage add fields", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithCatalog(ctx, "Krakow")
		ctx = logging.WithStage(ctx, "merge")

		logging.FromContext(ctx).Info().Msg("tagged")
		tl.AssertContains(t, `"catalog":"Krakow"`)
		tl.AssertContains(t, `"stage":"merge"`)
	})

	t.Run("WithRunID generates an id when empty", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "")

		id := logging.RunID(ctx)
		assert.Len(t, id, 36)
		logging.FromContext(ctx).Info().Msg("run")
		tl.AssertContains(t, `"run_id":"`+id+`"`)
	})

	t.Run("WithRunID keeps explicit id", func(t *testing.T) {
		ctx := logging.WithRunID(context.Background(), "nightly")
		assert.Equal(t, "nightly", logging.RunID(ctx))
	})

	t.Run("RunID is empty without one", func(t *testing.T) {
		assert.Empty(t, logging.RunID(context.Background()))
	})
}
