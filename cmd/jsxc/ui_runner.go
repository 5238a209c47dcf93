package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jsxc/internal/buildpipeline"
	"jsxc/internal/ui"
)

// wantTUI resolves --ui. The progress view owns the terminal, so it is
// never used when generated code goes to stdout.
func wantTUI(flag string, writesFiles bool, tty func() bool) (bool, error) {
	var on bool
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "auto":
		on = tty()
	case "on":
		on = true
	case "off":
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", flag)
	}
	return on && writesFiles, nil
}

func stdoutIsTerminal() bool { return isTerminal(os.Stdout) }

type buildOutcome struct {
	result buildpipeline.BuildResult
	err    error
}

// runBuildWithUI runs the build in the background and renders its events
// with the bubbletea progress model until the event channel closes.
func runBuildWithUI(ctx context.Context, title string, files []string, req *buildpipeline.BuildRequest) (buildpipeline.BuildResult, error) {
	if req == nil {
		return buildpipeline.BuildResult{}, fmt.Errorf("missing build request")
	}
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Files = files
		reqCopy.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := buildpipeline.Build(ctx, &reqCopy)
		outcomeCh <- buildOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
