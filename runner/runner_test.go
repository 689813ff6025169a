package runner

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uispecx/uispec"
)

type button struct {
	Disabled bool
}

func okRender(uispec.Component) (uispec.RenderResult, error) {
	return "<button/>", nil
}

func newQuietRunner(opts ...Option) *Runner {
	return New(append([]Option{WithOutput(io.Discard)}, opts...)...)
}

func TestRunner_runsBuiltSuite(t *testing.T) {
	t.Parallel()

	r := newQuietRunner()
	err := uispec.BuildSuite(r, button{},
		uispec.Options{BaseTitle: "renders", Render: okRender},
		[]uispec.Case{
			{},
			{Suffix: "disabled", Component: button{Disabled: true}},
		},
	)
	require.NoError(t, err)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Passed)
	assert.True(t, summary.Ok())
	require.Len(t, summary.Results, 2)
	assert.Equal(t, "button.renders", summary.Results[0].ID)
	assert.Equal(t, "button.renders_disabled", summary.Results[1].ID)
	assert.NotEmpty(t, summary.RunID)
}

func TestRunner_failureIsIsolated(t *testing.T) {
	t.Parallel()

	r := newQuietRunner()
	err := uispec.BuildSuite(r, button{},
		uispec.Options{BaseTitle: "renders", Render: okRender},
		[]uispec.Case{
			{
				Before: func(context.Context) error {
					return errors.New("fixture missing")
				},
			},
			{Suffix: "healthy"},
		},
	)
	require.NoError(t, err)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Passed)
	assert.False(t, summary.Ok())
	assert.Equal(t, StatusFailed, summary.Results[0].Status)
	assert.Contains(t, summary.Results[0].Error, "fixture missing")
	assert.Equal(t, StatusPassed, summary.Results[1].Status)
}

func TestRunner_skippedGroupDoesNotRun(t *testing.T) {
	t.Parallel()

	ran := false
	r := newQuietRunner()
	err := uispec.BuildSuite(r, button{},
		uispec.Options{
			BaseTitle: "renders",
			Mode:      uispec.ModeSkip,
			Render: func(uispec.Component) (uispec.RenderResult, error) {
				ran = true
				return nil, nil
			},
		},
	)
	require.NoError(t, err)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, ran, "render ran inside a skipped group")
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Passed)
	assert.Equal(t, StatusSkipped, summary.Results[0].Status)
}

func TestRunner_onlyGroupShadowsOthers(t *testing.T) {
	t.Parallel()

	r := newQuietRunner()
	require.NoError(t, uispec.BuildSuite(r, button{},
		uispec.Options{BaseTitle: "renders", Render: okRender}))

	type dialog struct{}
	require.NoError(t, uispec.BuildSuite(r, dialog{},
		uispec.Options{BaseTitle: "renders", Render: okRender, Mode: uispec.ModeOnly}))

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, summary.Total)
	assert.Equal(t, "dialog", summary.Results[0].Group)
}

func TestRunner_parallelRunsEveryTest(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	r := newQuietRunner(WithMaxParallel(4))

	cases := make([]uispec.Case, 8)
	for i := range cases {
		cases[i] = uispec.Case{Suffix: string(rune('a' + i))}
	}
	cases[0].Suffix = ""

	err := uispec.BuildSuite(r, button{},
		uispec.Options{
			BaseTitle: "renders",
			Render: func(uispec.Component) (uispec.RenderResult, error) {
				ran.Add(1)
				return nil, nil
			},
		},
		cases,
	)
	require.NoError(t, err)

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(8), ran.Load())
	assert.Equal(t, 8, summary.Passed)
}

func TestRunner_panicIsConvertedToFailure(t *testing.T) {
	t.Parallel()

	r := newQuietRunner()
	r.Group("widgets", func() {
		r.Test("explodes", func(context.Context) error {
			panic("boom")
		})
		r.Test("survives", func(context.Context) error {
			return nil
		})
	})

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Passed)
	assert.Contains(t, summary.Results[0].Error, "test panicked")
}

func TestRunner_canceledContext(t *testing.T) {
	t.Parallel()

	r := newQuietRunner()
	r.Group("widgets", func() {
		r.Test("never runs", func(context.Context) error { return nil })
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunner_ungroupedTestLandsInImplicitGroup(t *testing.T) {
	t.Parallel()

	r := newQuietRunner()
	r.Test("floating", func(context.Context) error { return nil })

	summary, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, summary.Total)
	assert.Equal(t, "floating", summary.Results[0].ID)
}
