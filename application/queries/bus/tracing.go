package bus

import (
	"context"
	"reflect"

	"pipeline-backend/pkg/observability"
)

// TracingMiddleware wraps query execution in a trace subsegment named
// after the query type.
func TracingMiddleware(tracer *observability.Tracer) Middleware {
	return func(next QueryHandler) QueryHandler {
		return QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
			var result interface{}
			err := tracer.TraceOperation(ctx, reflect.TypeOf(query).Name(), func(ctx context.Context) error {
				var innerErr error
				result, innerErr = next.Handle(ctx, query)
				return innerErr
			})
			return result, err
		})
	}
}
