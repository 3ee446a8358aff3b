// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// HTTPリクエストのメトリクスとビジネスイベントのカウンタを持つ。
type Collector struct {
	httpRequests    *prometheus.CounterVec
	requestDuration prometheus.Histogram

	usersCreated     prometheus.Counter
	userLogins       prometheus.Counter
	addressesCreated prometheus.Counter
	addressesDeleted prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vkminiapp_http_requests_total",
			Help: "メソッド・ステータスコード別のHTTPリクエスト数",
		}, []string{"method", "status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vkminiapp_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vkminiapp_users_created_total",
			Help: "VK認証で新規作成されたユーザーの合計数",
		}),
		userLogins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vkminiapp_user_logins_total",
			Help: "既存ユーザーのVK認証の合計数",
		}),
		addressesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vkminiapp_addresses_created_total",
			Help: "作成された住所の合計数",
		}),
		addressesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vkminiapp_addresses_deleted_total",
			Help: "削除された住所の合計数",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.requestDuration,
		c.usersCreated,
		c.userLogins,
		c.addressesCreated,
		c.addressesDeleted,
	)

	return c
}

// RecordHTTPRequest はHTTPリクエストのメソッド・ステータス・所要時間を記録する。
func (c *Collector) RecordHTTPRequest(method string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordUserCreated は新規ユーザー作成を記録する。
func (c *Collector) RecordUserCreated() {
	c.usersCreated.Inc()
}

// RecordUserLogin は既存ユーザーのログインを記録する。
func (c *Collector) RecordUserLogin() {
	c.userLogins.Inc()
}

// RecordAddressCreated は住所作成を記録する。
func (c *Collector) RecordAddressCreated() {
	c.addressesCreated.Inc()
}

// RecordAddressDeleted は住所削除を記録する。
func (c *Collector) RecordAddressDeleted() {
	c.addressesDeleted.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
