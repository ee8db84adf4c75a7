package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var streamBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "media_stream_bytes_total",
	Help: "Bytes of media content written to clients, partitioned by response status",
}, []string{"code"})

var streamOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "media_stream_outcomes_total",
	Help: "How media requests were resolved e.g. full, partial, not_satisfiable",
}, []string{"outcome"})

var streamOpenFiles = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "media_stream_open_files",
	Help: "File handles currently held open by in-flight media responses",
})

var streamAborts = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "media_stream_client_aborts_total",
	Help: "Media responses cut short because the client went away",
})

func init() {
	prometheus.MustRegister(reqCount, reqDur, respSize, reqSize, streamBytes, streamOutcomes, streamOpenFiles, streamAborts)
}

func StreamOutcome(outcome string) {
	streamOutcomes.WithLabelValues(outcome).Inc()
}

func StreamBytes(status int, n int64) {
	streamBytes.WithLabelValues(strconv.Itoa(status)).Add(float64(n))
}

func StreamFileOpened() {
	streamOpenFiles.Inc()
}

func StreamFileClosed() {
	streamOpenFiles.Dec()
}

func StreamAborted() {
	streamAborts.Inc()
}
