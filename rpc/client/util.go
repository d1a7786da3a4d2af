package client

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/lni/dragonboat/v4/logger"
	"time"
)

var (
	Logger = logger.GetLogger(common.LoggerClient)
)

// Metric names, all labelled with the command
const (
	metricRequests = "bouyomi_client_requests_total"
	metricErrors   = "bouyomi_client_errors_total"
	metricDuration = "bouyomi_client_request_duration_seconds"
)

// observeCall records one finished call in the default VictoriaMetrics set.
// Call metrics can be exported with metrics.WritePrometheus.
func observeCall(cmd common.Command, start time.Time, err error) {
	metrics.GetOrCreateCounter(requestsMetric(cmd)).Inc()
	metrics.GetOrCreateHistogram(fmt.Sprintf(`%s{command=%q}`, metricDuration, cmd.String())).Update(time.Since(start).Seconds())
	if err != nil {
		metrics.GetOrCreateCounter(errorsMetric(cmd, common.KindOf(err))).Inc()
	}
}

func requestsMetric(cmd common.Command) string {
	return fmt.Sprintf(`%s{command=%q}`, metricRequests, cmd.String())
}

func errorsMetric(cmd common.Command, kind common.ErrorKind) string {
	return fmt.Sprintf(`%s{command=%q,kind=%q}`, metricErrors, cmd.String(), kind.String())
}
