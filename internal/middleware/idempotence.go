package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/okazmarkt/core/internal/pkg/response"
)

const (
	idempotencyHeader    = "x-idempotence"
	idempotencyKeyPrefix = "okaz:idempotency:"
	idempotencyTTL       = 60 * time.Second

	stateInFlight = "in_flight"
	stateDone     = "done"
)

// Idempotence rejects a duplicate mutating request arriving within the TTL
// of an identical one. The client may pin its own key via the x-idempotence
// header; otherwise the request is fingerprinted.
func Idempotence(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || !mutating(c.Request.Method) || exemptFromIdempotence(c.Request.URL.Path) {
			c.Next()
			return
		}

		key, err := requestKey(c)
		if err != nil || key == "" {
			c.Next()
			return
		}
		redisKey := idempotencyKeyPrefix + key
		ctx := c.Request.Context()

		state, err := rdb.Get(ctx, redisKey).Result()
		if err == nil {
			if state == stateInFlight {
				response.Conflict(c, "an identical request is still being processed")
			} else {
				response.Conflict(c, "an identical request succeeded less than a minute ago")
			}
			return
		}
		if !errors.Is(err, redis.Nil) {
			// Redis trouble never blocks the request itself.
			c.Next()
			return
		}

		if rdb.Set(ctx, redisKey, stateInFlight, idempotencyTTL).Err() != nil {
			c.Next()
			return
		}
		c.Next()

		if status := c.Writer.Status(); status >= 200 && status < 300 {
			rdb.Set(ctx, redisKey, stateDone, redis.KeepTTL)
		} else {
			rdb.Del(ctx, redisKey)
		}
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// Form renders are read-modelled POSTs and safe to repeat.
func exemptFromIdempotence(path string) bool {
	p := strings.TrimRight(strings.ToLower(path), "/")
	return strings.HasPrefix(p, "/api/v1/catalog/") && strings.HasSuffix(p, "/form")
}

// requestKey prefers the client-supplied header and falls back to hashing
// method, URL, body and the requesting user.
func requestKey(c *gin.Context) (string, error) {
	if hdr := strings.TrimSpace(c.GetHeader(idempotencyHeader)); hdr != "" {
		return hdr, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	h := sha256.New()
	io.WriteString(h, c.Request.Method)
	io.WriteString(h, "\n")
	io.WriteString(h, c.Request.URL.String())
	io.WriteString(h, "\n")
	h.Write(body)
	io.WriteString(h, "\n")
	io.WriteString(h, CurrentUserID(c))
	return hex.EncodeToString(h.Sum(nil)), nil
}
