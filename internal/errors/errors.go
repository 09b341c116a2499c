package errors

import "errors"

var (
	ErrNoSupportedLocales        = errors.New("no supported locales configured")
	ErrDefaultLocaleNotSupported = errors.New("default locale not in supported set")
	ErrLocaleDirEmpty            = errors.New("locale directory is empty")
	ErrUnsupportedLocale         = errors.New("unsupported locale")
	ErrCatalogNotFound           = errors.New("translation catalog not found")
)
