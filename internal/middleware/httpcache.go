package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix = "okaz:response-cache:"

	defaultCacheTTL = 15 * time.Second
	// Responses larger than this are served normally but never cached.
	maxCacheableBody = 1 << 20
)

// CacheOptions configures the anonymous-GET response cache.
type CacheOptions struct {
	TTL time.Duration
	// SkipPaths are exact paths, or prefixes when ending in "*".
	SkipPaths []string
}

// cachedResponse is the redis payload. Body rides as base64 through
// encoding/json's []byte handling.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	body     []byte
	overflow bool
}

func (w *captureWriter) Write(data []byte) (int, error) {
	if !w.overflow {
		if len(w.body)+len(data) > maxCacheableBody {
			w.overflow = true
		} else {
			w.body = append(w.body, data...)
		}
	}
	return w.ResponseWriter.Write(data)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// HTTPCache serves anonymous GET responses from redis for a short TTL.
// Authenticated requests pass through with a private Cache-Control so
// intermediaries never reuse a per-user response.
func HTTPCache(rdb *redis.Client, opts CacheOptions) gin.HandlerFunc {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet || skipCache(c.Request.URL.Path, opts.SkipPaths) {
			c.Next()
			return
		}
		if IsAuthenticated(c) {
			c.Next()
			c.Writer.Header().Set("Cache-Control", "private, no-store")
			return
		}

		ctx := c.Request.Context()
		key := cacheKeyPrefix + c.Request.URL.RequestURI()

		if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(raw, &cached) == nil && cached.Status != 0 {
				c.Writer.Header().Set("x-okaz-cache", "hit")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		c.Writer = writer.ResponseWriter

		if writer.overflow || len(writer.body) == 0 || !cacheable(writer.Status(), writer.Header()) {
			return
		}
		raw, err := json.Marshal(cachedResponse{
			Status:      writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body,
		})
		if err != nil {
			return
		}
		_ = rdb.Set(ctx, key, raw, ttl).Err()
	}
}

// PurgeHTTPCache drops every cached response and reports how many were
// removed. Used by the admin cache endpoint after catalog overlay changes.
func PurgeHTTPCache(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	var deleted int64
	batch := make([]string, 0, 200)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := rdb.Del(ctx, batch...).Result()
		deleted += n
		batch = batch[:0]
		return err
	}

	iter := rdb.Scan(ctx, 0, cacheKeyPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				return deleted, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, err
	}
	return deleted, flush()
}

func skipCache(path string, patterns []string) bool {
	for _, p := range patterns {
		if strings.HasSuffix(p, "*") {
			if strings.HasPrefix(path, strings.TrimSuffix(p, "*")) {
				return true
			}
		} else if path == p {
			return true
		}
	}
	return false
}

func cacheable(status int, headers http.Header) bool {
	if status != http.StatusOK {
		return false
	}
	cc := strings.ToLower(headers.Get("Cache-Control"))
	return !strings.Contains(cc, "no-store") &&
		!strings.Contains(cc, "no-cache") &&
		!strings.Contains(cc, "private")
}
