package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"wholesale/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

const (
	IdempotencyKeyHeader    = "Idempotency-Key"
	IdempotentReplayHeader  = "Idempotent-Replayed"
	DefaultIdempotencyTTL   = 24 * time.Hour
	maxIdempotencyKeyLength = 128

	idempotencyPending = "pending"
	idempotencyUnknown = "unknown"
)

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Idempotency replays the first successful response of a POST for any retry
// carrying the same Idempotency-Key. A key whose first request is still
// running answers 409; a failed first request frees the key for a retry.
// A first request whose commit outcome is unknown keeps the key and every
// retry answers 409 until the client has re-read the data.
// When Redis is unreachable requests go through unprotected.
func Idempotency(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) echo.MiddlewareFunc {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	logger = logger.With("component", "idempotency")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			key := req.Header.Get(IdempotencyKeyHeader)
			if req.Method != http.MethodPost || key == "" {
				return next(ctx)
			}
			if len(key) > maxIdempotencyKeyLength {
				return echo.NewHTTPError(http.StatusBadRequest, "Idempotency-Key is too long")
			}

			storeKey := "idempotency:" + req.URL.Path + ":" + key
			// store writes must survive the client hanging up
			storeCtx := context.WithoutCancel(req.Context())

			reserved, err := client.SetNX(storeCtx, storeKey, idempotencyPending, ttl).Result()
			if err != nil {
				logger.WarnContext(storeCtx, "Idempotency store unavailable", "error", err)
				return next(ctx)
			}
			if !reserved {
				return replay(storeCtx, ctx, client, storeKey, next, logger)
			}

			recorder := &bodyRecorder{ResponseWriter: ctx.Response().Writer}
			ctx.Response().Writer = recorder

			handlerErr := next(ctx)

			if errors.Is(handlerErr, errs.ErrCommitFailed) {
				if err = client.Set(storeCtx, storeKey, idempotencyUnknown, ttl).Err(); err != nil {
					logger.WarnContext(storeCtx, "Failed to mark idempotency key", "key", key, "error", err)
				}
				return handlerErr
			}

			status := ctx.Response().Status
			if handlerErr != nil || status < 200 || status >= 300 {
				if err = client.Del(storeCtx, storeKey).Err(); err != nil {
					logger.WarnContext(storeCtx, "Failed to release idempotency key", "key", key, "error", err)
				}
				return handlerErr
			}

			payload, err := json.Marshal(storedResponse{
				Status:      status,
				ContentType: ctx.Response().Header().Get(echo.HeaderContentType),
				Body:        recorder.body.Bytes(),
			})
			if err == nil {
				err = client.Set(storeCtx, storeKey, payload, ttl).Err()
			}
			if err != nil {
				logger.WarnContext(storeCtx, "Failed to store idempotent response", "key", key, "error", err)
			}
			return nil
		}
	}
}

func replay(
	storeCtx context.Context,
	ctx echo.Context,
	client redis.Cmdable,
	storeKey string,
	next echo.HandlerFunc,
	logger *slog.Logger,
) error {
	raw, err := client.Get(storeCtx, storeKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnContext(storeCtx, "Idempotency store unavailable", "error", err)
		}
		return next(ctx)
	}
	switch string(raw) {
	case idempotencyPending:
		return echo.NewHTTPError(http.StatusConflict, "A request with this Idempotency-Key is still being processed")
	case idempotencyUnknown:
		return echo.NewHTTPError(http.StatusConflict,
			"The first request with this Idempotency-Key may have been applied; re-read before retrying")
	}

	var stored storedResponse
	if err = json.Unmarshal(raw, &stored); err != nil {
		logger.WarnContext(storeCtx, "Corrupt idempotent response", "error", err)
		return next(ctx)
	}

	ctx.Response().Header().Set(IdempotentReplayHeader, "true")
	return ctx.Blob(stored.Status, stored.ContentType, stored.Body)
}

type bodyRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
