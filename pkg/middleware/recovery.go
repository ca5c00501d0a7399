package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Suhaibinator/SPipeline/pkg/common"
	"github.com/Suhaibinator/SPipeline/pkg/pipeline"
	"go.uber.org/zap"
)

// Recovery is a middleware that recovers from panics raised further down the
// pipeline and converts them into a 500 Internal Server Error response.
func Recovery(logger *zap.Logger) pipeline.Middleware {
	return pipeline.HandleNext(func(r *http.Request, next pipeline.Next) (resp *common.Response, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				// Log the panic
				logger.Error("Panic recovered",
					zap.Any("panic", rec),
					zap.String("stack", string(debug.Stack())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)

				resp = common.NewResponse(http.StatusInternalServerError).WithString("Internal Server Error")
				err = nil
			}
		}()

		return next.Invoke(r)
	})
}
