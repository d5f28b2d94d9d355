// Package sink provides failure sinks for HandleEx: structured logging
// through zap, collection into a slice, counting, and fan-out to several
// sinks. A sink receives each handled failure exactly once.
package sink
