package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "plays_total",
		Help:      "Сыгранные ставки по типу игры и результату.",
	}, []string{"game_type", "result"})

	CoinsWagered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "coins_wagered_total",
		Help:      "Сумма поставленных монет.",
	}, []string{"game_type"})

	CoinsPaid = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "coins_paid_total",
		Help:      "Сумма выплаченных выигрышей.",
	}, []string{"game_type"})

	PlayRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casino",
		Name:      "play_rejections_total",
		Help:      "Отклоненные ставки по причине.",
	}, []string{"reason"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "casino",
		Name:      "http_request_duration_seconds",
		Help:      "Длительность HTTP запросов.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// учитывает одну завершенную ставку
func ObservePlay(gameType string, bet int64, won bool, winAmount int64) {
	result := "lose"
	if won {
		result = "win"
	}
	PlaysTotal.WithLabelValues(gameType, result).Inc()
	CoinsWagered.WithLabelValues(gameType).Add(float64(bet))
	if winAmount > 0 {
		CoinsPaid.WithLabelValues(gameType).Add(float64(winAmount))
	}
}

// middleware для гистограммы запросов; route - шаблон пути, чтобы не плодить метки
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
