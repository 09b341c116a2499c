package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	apperrors "lingo/internal/errors"
)

// TranslateFunc maps a message-id to its translated string. When a message
// is unknown it must return the message-id unchanged.
type TranslateFunc func(messageID string) string

// Identity is the translate function bound to requests whose catalog could
// not be loaded. It returns every message-id as-is.
func Identity(messageID string) string {
	return messageID
}

// Catalog holds the translations for exactly one locale. It is immutable
// once loaded and safe for concurrent use.
type Catalog struct {
	locale    string
	messages  map[string]string
	localizer *goi18n.Localizer
}

// CatalogFileName returns the file name a catalog for the given locale is
// expected under, following the go-i18n active file convention.
func CatalogFileName(locale string) string {
	return "active." + locale + ".toml"
}

// LoadCatalog reads the catalog file for locale beneath dir. Catalog files
// are flat TOML maps of message-id to translated string.
//
// A missing file is reported as ErrCatalogNotFound; unreadable or malformed
// files are reported as distinct wrapped errors so callers can tell a
// missing catalog apart from a broken one.
func LoadCatalog(dir, locale string) (*Catalog, error) {
	path := filepath.Join(dir, CatalogFileName(locale))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var messages map[string]string
	if err := toml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.ParseMessageFileBytes(data, CatalogFileName(locale)); err != nil {
		return nil, fmt.Errorf("register catalog %s: %w", path, err)
	}

	return &Catalog{
		locale:    locale,
		messages:  messages,
		localizer: goi18n.NewLocalizer(bundle, locale),
	}, nil
}

// Locale returns the locale this catalog was loaded for.
func (c *Catalog) Locale() string {
	return c.locale
}

// Len returns the number of messages in the catalog.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// T returns the translation for messageID, or messageID unchanged when the
// catalog has no entry for it.
func (c *Catalog) T(messageID string) string {
	return c.Td(messageID, nil)
}

// Td is like T but renders template placeholders from data, e.g. a message
// "{{.count}} items" with data {"count": 3}.
func (c *Catalog) Td(messageID string, data map[string]any) string {
	if messageID == "" {
		return ""
	}
	msg, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Messages returns a copy of the flat message-id to translation map, for
// serialization to clients.
func (c *Catalog) Messages() map[string]string {
	out := make(map[string]string, len(c.messages))
	for id, msg := range c.messages {
		out[id] = msg
	}
	return out
}
