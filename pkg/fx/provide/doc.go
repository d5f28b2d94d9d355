// Package provide contains zero-input value producers: Provider, which cannot
// fail, and FallibleProvider, which may.
//
// Providers are not chained; feeding a value into an effect is left to the
// caller. Failure routing mirrors package effect:
// - OnEx: on failure, ask a fallible recovery provider instead
// - Recover/OrElse: on failure, fall back to a provider or a fixed value
// - HandleEx: route the failure to a sink and yield the zero value
// - IgnoreEx: drop the failure and yield the zero value
// - Outcome: capture one attempt as an fx.Result
package provide
