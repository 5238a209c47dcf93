package main

import (
	"fmt"
	"io"
	"time"

	"jsxc/internal/buildpipeline"
)

// printStageTimings пишет "compiled 12.3 ms" по каждой завершённой стадии.
func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	for _, st := range timings.Stages() {
		fmt.Fprintf(out, "%s %.1f ms\n", st.Done(), toMillis(timings.Duration(st)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
