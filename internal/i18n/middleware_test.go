package i18n_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"lingo/internal/i18n"
)

func localizedMux(t *testing.T) (*i18n.Locales, http.Handler) {
	t.Helper()
	dir := t.TempDir()
	writeCatalog(t, dir, "en", "hello = \"Hello\"\n")
	writeCatalog(t, dir, "fr", "hello = \"Bonjour\"\n")
	locales := newLocales(t, dir, []string{"en", "fr"}, "en")

	handler := locales.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		binding := i18n.FromContext(r.Context())
		fmt.Fprintf(w, "%s:%s", binding.Locale, binding.T("hello"))
	}))
	return locales, handler
}

func TestMiddleware_BindsLocaleFromCookie(t *testing.T) {
	_, handler := localizedMux(t)

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{"no cookie uses default", "", "en:Hello"},
		{"supported cookie", "fr", "fr:Bonjour"},
		{"unsupported cookie uses default", "xx", "en:Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: i18n.LocaleCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Body.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, rec.Body.String())
			}
		})
	}
}

func TestMiddleware_IdentityFallbackWithoutCatalog(t *testing.T) {
	dir := t.TempDir()
	locales := newLocales(t, dir, []string{"en"}, "en")

	handler := locales.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		binding := i18n.FromContext(r.Context())
		fmt.Fprint(w, binding.T("untranslated message"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("request must succeed without a catalog, got %d", rec.Code)
	}
	if rec.Body.String() != "untranslated message" {
		t.Errorf("expected identity translation, got %q", rec.Body.String())
	}
}

// Concurrent requests with different locale cookies must each observe only
// their own locale and translate function.
func TestMiddleware_ConcurrentRequestsAreIsolated(t *testing.T) {
	_, handler := localizedMux(t)
	server := httptest.NewServer(handler)
	defer server.Close()

	expected := map[string]string{
		"en": "en:Hello",
		"fr": "fr:Bonjour",
	}

	const perLocale = 25
	var wg sync.WaitGroup
	errCh := make(chan error, 2*perLocale)

	for locale, want := range expected {
		for i := 0; i < perLocale; i++ {
			wg.Add(1)
			go func(locale, want string) {
				defer wg.Done()
				req, err := http.NewRequest(http.MethodGet, server.URL, nil)
				if err != nil {
					errCh <- err
					return
				}
				req.AddCookie(&http.Cookie{Name: i18n.LocaleCookieName, Value: locale})
				resp, err := http.DefaultClient.Do(req)
				if err != nil {
					errCh <- err
					return
				}
				body, err := io.ReadAll(resp.Body)
				resp.Body.Close()
				if err != nil {
					errCh <- err
					return
				}
				if string(body) != want {
					errCh <- fmt.Errorf("locale %s observed %q, want %q", locale, body, want)
				}
			}(locale, want)
		}
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Error(err)
	}
}

func TestFromContext_Unbound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	binding := i18n.FromContext(req.Context())
	if binding.Locale != "" {
		t.Errorf("expected empty locale, got %q", binding.Locale)
	}
	if binding.T == nil {
		t.Fatal("expected a usable translate function")
	}
	if got := binding.T("key"); got != "key" {
		t.Errorf("expected identity translator, got %q", got)
	}
}
