package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStreamMetrics(t *testing.T) {
	before := testutil.ToFloat64(streamBytes.WithLabelValues("206"))
	StreamBytes(206, 500000)
	if got := testutil.ToFloat64(streamBytes.WithLabelValues("206")) - before; got != 500000 {
		t.Fatalf("media_stream_bytes_total grew by %v, want 500000", got)
	}

	openBefore := testutil.ToFloat64(streamOpenFiles)
	StreamFileOpened()
	StreamFileOpened()
	StreamFileClosed()
	StreamFileClosed()
	if got := testutil.ToFloat64(streamOpenFiles); got != openBefore {
		t.Fatalf("media_stream_open_files = %v, want %v", got, openBefore)
	}

	outcomeBefore := testutil.ToFloat64(streamOutcomes.WithLabelValues("partial"))
	StreamOutcome("partial")
	if got := testutil.ToFloat64(streamOutcomes.WithLabelValues("partial")) - outcomeBefore; got != 1 {
		t.Fatalf("media_stream_outcomes_total grew by %v, want 1", got)
	}
}
