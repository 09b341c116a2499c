package i18n

import (
	"net/http"

	"lingo/internal/metrics"
)

// LocaleCookieName is the cookie the effective locale is read from and the
// set-language endpoint writes to.
const LocaleCookieName = "locale"

// Middleware binds a locale and translate function to every request before
// route dispatch. The binding lives in the request context only, so
// concurrent requests with different locales never observe each other's
// translator. Catalog load failures fall back to the identity translator
// and never fail the request; downstream errors propagate unmodified.
func (l *Locales) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieLocale := ""
		if cookie, err := r.Cookie(LocaleCookieName); err == nil {
			cookieLocale = cookie.Value
		}

		locale := l.Resolve(cookieLocale)
		metrics.ObserveLocaleRequest(locale)

		ctx := WithRequestLocale(r.Context(), RequestLocale{
			Locale: locale,
			T:      l.Translator(locale),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
