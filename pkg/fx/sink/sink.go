package sink

import (
	"go.uber.org/zap"

	"github.com/ib-77/sidefx/pkg/fx"
)

// Log returns a sink writing one entry per failure to logger. Failures built
// with fx.Fail also carry their id.
func Log(logger *zap.Logger, opts ...Option) func(error) {
	fx.MustNotBeNil("logger", logger)
	o := newLogOptions(opts)

	return func(err error) {
		ce := logger.Check(o.level, o.message)
		if ce == nil {
			return
		}
		fields := make([]zap.Field, 0, len(o.fields)+2)
		fields = append(fields, o.fields...)
		fields = append(fields, zap.Error(err))
		if id, ok := fx.FailureId(err); ok {
			fields = append(fields, zap.Stringer("failure_id", id))
		}
		ce.Write(fields...)
	}
}

// Collect appends every failure to *dst.
func Collect(dst *[]error) func(error) {
	fx.MustNotBeNil("dst", dst)
	return func(err error) {
		*dst = append(*dst, err)
	}
}

// CollectAll is Collect that splits errors.Join results into their parts.
func CollectAll(dst *[]error) func(error) {
	fx.MustNotBeNil("dst", dst)
	return func(err error) {
		*dst = append(*dst, fx.GetErrors(err)...)
	}
}

// Count increments *n per failure.
func Count(n *int) func(error) {
	fx.MustNotBeNil("n", n)
	return func(error) {
		*n++
	}
}

// Join fans each failure out to every sink, in order.
func Join(sinks ...func(error)) func(error) {
	fx.MustEntriesNotBeNil("sinks", sinks)
	owned := append([]func(error){}, sinks...)
	return func(err error) {
		for _, s := range owned {
			s(err)
		}
	}
}
