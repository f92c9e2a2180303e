package handler

import (
	"net/http"

	"estoquefacil/internal/store"
	"estoquefacil/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	kv  store.KV
	rdb *redis.Client
}

// NewHealthHandler builds the health endpoint. rdb may be nil when running on
// the in-memory driver; the DLQ depth is only reported when the queue exists.
func NewHealthHandler(kv store.KV, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{kv: kv, rdb: rdb}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.kv.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down"})
		return
	}

	resp := gin.H{"status": "ok", "store": "up"}
	if h.rdb != nil {
		depth, err := worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueRecibo)
		if err != nil {
			depth = -1
		}
		resp["dlq_recibo"] = depth
	}
	c.JSON(http.StatusOK, resp)
}
