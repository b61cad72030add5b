package main

import (
	"context"
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"

	"github.com/chazu/colorbuttons/pkg/config"
	"github.com/chazu/colorbuttons/pkg/demo"
)

func TestE2EClosedSelectorKeepsPanel(t *testing.T) {
	result := runExample(t, newTestApp(t, nil), "close_selector.lisp")
	require.Empty(t, result.Errors)
	require.False(t, result.Demo.SelectorOpen)
	require.Equal(t, demo.ExampleAlpha, result.Demo.State.Example)
	require.Equal(t, demo.NotifyNone, result.Demo.State.Notify)
}

func TestE2ESelectAfterClose(t *testing.T) {
	source := `(close "Color button examples") (select 1)`
	result := newTestApp(t, nil).RunScript(context.Background(), source)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Message, "selector is closed")
	require.Equal(t, demo.ExampleNone, result.Demo.State.Example)
}

func TestE2EQuitAfterFrameMode(t *testing.T) {
	a := newTestApp(t, env.EnvSet{"DEMO_QUIT_MODE": "frame"})
	result := a.RunScript(context.Background(), "(select 1)\n(quit)")
	require.Empty(t, result.Errors)
	require.True(t, result.Quit)

	// One final frame is built and presented after the quit is seen.
	require.Len(t, result.Transcript, 2)
	require.Equal(t, result.Transcript[0].Frame+1, result.Transcript[1].Frame)
}

func TestE2EActionsAfterQuit(t *testing.T) {
	result := newTestApp(t, nil).RunScript(context.Background(), "(quit)\n(select 1)")
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0].Message, "quit")
	require.True(t, result.Quit)
}

func TestE2ENotificationOnlyInBasics(t *testing.T) {
	source := `
(select :input-format)
(click "RGBA red")
(click "HSVA black")
(expect-notify "")
`
	result := newTestApp(t, nil).RunScript(context.Background(), source)
	require.Empty(t, result.Errors)
}

func TestE2ESyntaxErrorWithLineInfo(t *testing.T) {
	result := newTestApp(t, nil).RunScript(context.Background(), "(select 1)\n(click \"Red color\"")
	require.NotEmpty(t, result.Errors)
	require.NotEmpty(t, result.Errors[0].String())
}

func TestE2EInvalidConfig(t *testing.T) {
	_, err := config.FromEnvSet(env.EnvSet{"DEMO_QUIT_MODE": "later"})
	require.Error(t, err)

	_, err = NewApp(config.Config{QuitMode: "later", RenderFailure: "abort"})
	require.Error(t, err)
}

type chanWaker chan struct{}

func (w chanWaker) Wake() { w <- struct{}{} }

func TestWakeOnDoneWakesAfterCancel(t *testing.T) {
	w := make(chanWaker, 1)
	ctx, cancel := context.WithCancel(context.Background())
	stop := wakeOnDone(ctx, w)
	defer stop()

	require.Empty(t, w)
	cancel()

	select {
	case <-w:
	case <-time.After(time.Second):
		t.Fatal("window was not woken after cancellation")
	}
}

func TestWakeOnDoneStopped(t *testing.T) {
	w := make(chanWaker, 1)
	ctx, cancel := context.WithCancel(context.Background())
	wakeOnDone(ctx, w)()
	cancel()

	time.Sleep(10 * time.Millisecond)
	require.Empty(t, w)
}
