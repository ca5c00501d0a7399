// Package middleware provides a collection of middleware components for the SPipeline framework.
package middleware

import (
	"net/http"
	"time"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"go.uber.org/zap"
)

// Logging is a middleware that logs requests and their results.
// It observes the request before dispatching the rest of the pipeline and the
// final result on the way back.
func Logging(logger *zap.Logger) pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (*common.Response, error) {
		start := time.Now()

		resp, err := next.Invoke(r)

		duration := time.Since(start)
		if err != nil {
			logger.Error("Request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return nil, err
		}

		logger.Info("Request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration),
		)
		return resp, nil
	})
}
