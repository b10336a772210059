package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func slowRequestThreshold() time.Duration {
	if env := os.Getenv("SLOW_REQUEST_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 200 * time.Millisecond
}

// RequestLogger logs every request with its latency and flags slow ones.
func RequestLogger() gin.HandlerFunc {
	threshold := slowRequestThreshold()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[REQ] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > threshold {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
