package db

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scd_db_connects_total",
		Help: "Successful database connects.",
	})
	metricConnectFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scd_db_connect_failures_total",
		Help: "Failed database connect attempts.",
	})
	metricStatementErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scd_db_statement_errors_total",
		Help: "Statements that failed and triggered a rollback.",
	})
	metricRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scd_db_retries_total",
		Help: "Statement retries after a forced reconnect.",
	})
)
