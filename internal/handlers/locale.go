package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lingo/internal/i18n"
	"lingo/internal/logger"
	"lingo/middleware"
)

// localeCookieMaxAge is the lifetime of the locale preference cookie: 30 days.
const localeCookieMaxAge = 30 * 24 * 3600

// RegisterLocaleRoutes exposes the locale switching and translation JSON API.
func RegisterLocaleRoutes(router chi.Router, locales *i18n.Locales) {
	router.Get("/api/set-language/{locale}", setLanguage(locales))
	router.Get("/api/translations/{locale}", getTranslations(locales))
	router.Get("/api/locales", listLocales(locales))
}

// setLanguage stores the requested locale in a client cookie. Unsupported
// locales are rejected with 400 and no cookie is written.
func setLanguage(locales *i18n.Locales) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		locale := chi.URLParam(request, "locale")
		if !locales.IsSupported(locale) {
			writeJSON(writer, request, http.StatusBadRequest, map[string]string{
				"status":  "error",
				"message": "Unsupported locale",
			})
			return
		}
		http.SetCookie(writer, &http.Cookie{
			Name:     i18n.LocaleCookieName,
			Value:    locale,
			Path:     "/",
			MaxAge:   localeCookieMaxAge,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(writer, request, http.StatusOK, map[string]string{
			"status": "success",
			"locale": locale,
		})
	}
}

// getTranslations serializes the raw catalog for a locale as a flat
// message-id to translation map, for client-side rendering.
//
// Unlike the binding middleware this endpoint surfaces load failures to the
// caller: translations were explicitly requested, so substituting an empty
// or identity catalog would be misleading.
func getTranslations(locales *i18n.Locales) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		locale := chi.URLParam(request, "locale")
		if !locales.IsSupported(locale) {
			writeJSON(writer, request, http.StatusNotFound, map[string]string{
				"error": "Unsupported locale",
			})
			return
		}
		catalog, err := locales.Catalog(locale)
		if err != nil {
			requestID := middleware.GetRequestID(request.Context())
			logger.HTTPError(request.Method, request.URL.Path, http.StatusInternalServerError, err).
				Str("request_id", requestID).
				Str("locale", locale).
				Msg("failed to load translations")
			writeJSON(writer, request, http.StatusInternalServerError, map[string]string{
				"error": "Failed to load translations: " + err.Error(),
			})
			return
		}
		writeJSON(writer, request, http.StatusOK, catalog.Messages())
	}
}

// listLocales reports the supported locale set so clients can build a
// language picker.
func listLocales(locales *i18n.Locales) http.HandlerFunc {
	type localesResponse struct {
		Locales []string `json:"locales"`
		Default string   `json:"default"`
	}
	return func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, request, http.StatusOK, localesResponse{
			Locales: locales.Supported(),
			Default: locales.Default(),
		})
	}
}

func writeJSON(writer http.ResponseWriter, request *http.Request, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		requestID := middleware.GetRequestID(request.Context())
		logger.HTTPError(request.Method, request.URL.Path, status, err).
			Str("request_id", requestID).
			Msg("failed to encode JSON response")
	}
}
