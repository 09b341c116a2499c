// Package i18n resolves a locale for each HTTP request and binds the
// matching translation catalog into the request context.
//
// The locale is read from the "locale" cookie; values outside the configured
// supported set fall back to the default locale. Catalogs are flat TOML
// files loaded lazily and cached for the process lifetime.
package i18n

import (
	"errors"
	"strings"

	"lingo/internal/cache"
	apperrors "lingo/internal/errors"
	"lingo/internal/logger"
)

// Locales is the process-wide locale registry. Its configuration is fixed
// at startup; loaded catalogs are cached and never invalidated.
type Locales struct {
	dir       string
	supported map[string]struct{}
	order     []string
	fallback  string
	catalogs  *cache.Cache[*Catalog]
}

// New builds a Locales registry for the catalog directory dir.
// The supported list must be non-empty and contain defaultLocale.
func New(dir string, supported []string, defaultLocale string) (*Locales, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, apperrors.ErrLocaleDirEmpty
	}

	set := make(map[string]struct{}, len(supported))
	order := make([]string, 0, len(supported))
	for _, locale := range supported {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}
		if _, dup := set[locale]; dup {
			continue
		}
		set[locale] = struct{}{}
		order = append(order, locale)
	}
	if len(order) == 0 {
		return nil, apperrors.ErrNoSupportedLocales
	}
	if _, ok := set[defaultLocale]; !ok {
		return nil, apperrors.ErrDefaultLocaleNotSupported
	}

	return &Locales{
		dir:       dir,
		supported: set,
		order:     order,
		fallback:  defaultLocale,
		catalogs:  cache.New[*Catalog](0),
	}, nil
}

// Supported returns the configured locales in configuration order.
func (l *Locales) Supported() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Default returns the configured default locale.
func (l *Locales) Default() string {
	return l.fallback
}

// IsSupported reports whether locale is a member of the supported set.
func (l *Locales) IsSupported(locale string) bool {
	_, ok := l.supported[locale]
	return ok
}

// Resolve determines the effective locale for a request given the raw
// cookie value. An absent or unsupported value yields the default locale,
// so the result is always a member of the supported set.
func (l *Locales) Resolve(cookieLocale string) string {
	if cookieLocale == "" {
		return l.fallback
	}
	if l.IsSupported(cookieLocale) {
		return cookieLocale
	}
	return l.fallback
}

// Catalog returns the loaded catalog for locale, loading it on first use.
// Load errors are returned to the caller and are not cached, so a catalog
// that appears on disk later is picked up on a subsequent request.
// Concurrent first loads may race benignly; catalogs are immutable and the
// last write wins.
func (l *Locales) Catalog(locale string) (*Catalog, error) {
	if c, ok := l.catalogs.Get(locale); ok {
		return c, nil
	}
	c, err := LoadCatalog(l.dir, locale)
	if err != nil {
		return nil, err
	}
	l.catalogs.Set(locale, c)
	return c, nil
}

// Translator returns the translate function for locale, falling back to
// the identity function when the catalog cannot be loaded. The fallback is
// deliberate: locale binding must never fail a request. A missing catalog
// is logged at debug only; unexpected load errors are logged at warn so
// broken catalogs stay observable.
func (l *Locales) Translator(locale string) TranslateFunc {
	catalog, err := l.Catalog(locale)
	if err != nil {
		if errors.Is(err, apperrors.ErrCatalogNotFound) {
			logger.Get().Debug().
				Str("locale", locale).
				Msg("no catalog for locale, using identity translator")
		} else {
			logger.Get().Warn().
				Err(err).
				Str("locale", locale).
				Msg("catalog load failed, using identity translator")
		}
		return Identity
	}
	return catalog.T
}

// Stats returns the message count per loaded catalog. Locales whose
// catalog has not been requested yet are absent from the map.
func (l *Locales) Stats() map[string]int {
	stats := make(map[string]int)
	for _, locale := range l.catalogs.Keys() {
		if c, ok := l.catalogs.Get(locale); ok {
			stats[locale] = c.Len()
		}
	}
	return stats
}
