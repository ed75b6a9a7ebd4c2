package limiter

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	cases := []struct {
		limit string
		want  float64
	}{
		{"5-S", 5},
		{"60-M", 1},
		{"3600-H", 1},
		{"86400-D", 1},
	}
	for _, tc := range cases {
		rate, err := ParseLimit(tc.limit)
		require.NoError(t, err, tc.limit)
		assert.InDelta(t, tc.want, rate.Rate, 1e-9, tc.limit)
	}
}

func TestParseLimitInvalid(t *testing.T) {
	for _, limit := range []string{"", "5", "5/S", "x-M", "5-W"} {
		_, err := ParseLimit(limit)
		assert.Error(t, err, limit)
	}
}

func TestRouteKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var key string
	r.POST("/sign_index_action/:eid/", func(c *gin.Context) {
		key = GetKeyRouteWithIP(c)
	})

	req := httptest.NewRequest("POST", "/sign_index_action/1/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "-sign_index_action-_eid-10.0.0.1", key)
}
