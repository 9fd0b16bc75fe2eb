// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// サービス層およびミドルウェアから利用する。
type MetricsCollector interface {
	RecordUserCreated()
	RecordExerciseCreated()
	RecordLogQuery(duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	usersCreated     prometheus.Counter
	exercisesCreated prometheus.Counter
	logQueries       prometheus.Counter
	logQueryLatency  prometheus.Histogram
	httpStatus       *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitlog_users_created_total",
			Help: "作成されたユーザーの合計数",
		}),
		exercisesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitlog_exercises_created_total",
			Help: "作成された運動記録の合計数",
		}),
		logQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fitlog_log_queries_total",
			Help: "運動ログ取得クエリの合計数",
		}),
		logQueryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fitlog_log_query_latency_seconds",
			Help:    "運動ログ取得（取得+カウント）のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fitlog_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.usersCreated,
		c.exercisesCreated,
		c.logQueries,
		c.logQueryLatency,
		c.httpStatus,
	)

	return c
}

// RecordUserCreated はユーザー作成を記録する。
func (c *Collector) RecordUserCreated() {
	c.usersCreated.Inc()
}

// RecordExerciseCreated は運動記録の作成を記録する。
func (c *Collector) RecordExerciseCreated() {
	c.exercisesCreated.Inc()
}

// RecordLogQuery はログ取得クエリの実行とレイテンシを記録する。
func (c *Collector) RecordLogQuery(duration time.Duration) {
	c.logQueries.Inc()
	c.logQueryLatency.Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// compile-time interface check
var _ MetricsCollector = (*Collector)(nil)
