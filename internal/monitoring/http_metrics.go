package monitoring

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// RequestCounters tracks in-flight and total HTTP requests. Constructed once
// at startup and shared between the middleware and the status service.
type RequestCounters struct {
	active atomic.Int64
	total  atomic.Uint64
}

func NewRequestCounters() *RequestCounters {
	return &RequestCounters{}
}

// Middleware counts every request passing through the engine.
func (rc *RequestCounters) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc.active.Add(1)
		rc.total.Add(1)
		defer rc.active.Add(-1)
		c.Next()
	}
}

func (rc *RequestCounters) Stats() (active int64, total uint64) {
	return rc.active.Load(), rc.total.Load()
}
