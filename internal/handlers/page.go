package handlers

import (
	"html/template"
	"net/http"

	"lingo/internal/i18n"
	"lingo/internal/logger"
	"lingo/middleware"
)

// pageTemplate is a minimal localized page. The translate function and
// locale arrive as per-render data, never through shared template globals,
// so concurrent renders with different locales cannot interfere.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
  <meta charset="utf-8">
  <title>{{call .T "app.title"}}</title>
</head>
<body>
  <h1>{{call .T "app.title"}}</h1>
  <p>{{call .T "app.greeting"}}</p>
  <p data-locale="{{.Locale}}">{{call .T "app.current_language"}}</p>
</body>
</html>
`

type pageData struct {
	Locale string
	T      i18n.TranslateFunc
}

// Page renders the demo page using the locale binding of the current
// request.
func Page() http.HandlerFunc {
	tmpl := template.Must(template.New("page").Parse(pageTemplate))
	return func(writer http.ResponseWriter, request *http.Request) {
		binding := i18n.FromContext(request.Context())
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(writer, pageData{Locale: binding.Locale, T: binding.T}); err != nil {
			requestID := middleware.GetRequestID(request.Context())
			logger.HTTPError(request.Method, request.URL.Path, http.StatusInternalServerError, err).
				Str("request_id", requestID).
				Msg("failed to render page")
		}
	}
}
