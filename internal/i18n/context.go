package i18n

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// requestLocaleKey is the context key the binder stores the per-request
// locale binding under.
const requestLocaleKey contextKey = "request_locale"

// RequestLocale is the per-request locale binding: the effective locale and
// the translate function scoped to it. Each request owns its own value; it
// is never shared across requests.
type RequestLocale struct {
	Locale string
	T      TranslateFunc
}

// WithRequestLocale returns a context carrying the given binding.
func WithRequestLocale(ctx context.Context, rl RequestLocale) context.Context {
	return context.WithValue(ctx, requestLocaleKey, rl)
}

// FromContext retrieves the locale binding from ctx. When no binding is
// present (a handler invoked outside the middleware chain) it returns a
// usable zero binding with the identity translator.
func FromContext(ctx context.Context) RequestLocale {
	if rl, ok := ctx.Value(requestLocaleKey).(RequestLocale); ok {
		return rl
	}
	return RequestLocale{T: Identity}
}
