// Package requestctx carries per-request caller identity and locale through
// context values.
package requestctx

import "context"

// Caller is the authenticated identity behind a request.
type Caller struct {
	Subject string
	Role    string
}

type callerContextKey struct{}

type localeContextKey struct{}

// WithCaller stores the authenticated caller in context.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callerContextKey{}, caller)
}

// CallerFromContext returns the caller stored in context and whether one was set.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	if ctx == nil {
		return Caller{}, false
	}
	caller, ok := ctx.Value(callerContextKey{}).(Caller)
	return caller, ok
}

// SubjectFromContext returns the caller subject, or empty when unauthenticated.
func SubjectFromContext(ctx context.Context) string {
	caller, _ := CallerFromContext(ctx)
	return caller.Subject
}

// WithLocale stores the negotiated response locale in context.
func WithLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the negotiated locale, or empty when none was set.
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(localeContextKey{}).(string)
	return value
}
