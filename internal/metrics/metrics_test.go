package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePlay(t *testing.T) {
	winsBefore := testutil.ToFloat64(PlaysTotal.WithLabelValues("poker", "win"))
	wageredBefore := testutil.ToFloat64(CoinsWagered.WithLabelValues("poker"))
	paidBefore := testutil.ToFloat64(CoinsPaid.WithLabelValues("poker"))

	ObservePlay("poker", 10, true, 30)
	ObservePlay("poker", 5, false, 0)

	assert.Equal(t, winsBefore+1, testutil.ToFloat64(PlaysTotal.WithLabelValues("poker", "win")))
	assert.Equal(t, wageredBefore+15, testutil.ToFloat64(CoinsWagered.WithLabelValues("poker")))
	assert.Equal(t, paidBefore+30, testutil.ToFloat64(CoinsPaid.WithLabelValues("poker")))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/games/category/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	before := testutil.CollectAndCount(HTTPDuration)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/games/category/3", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.CollectAndCount(HTTPDuration))
}
