package i18n_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "lingo/internal/errors"
	"lingo/internal/i18n"
)

func writeCatalog(t *testing.T, dir, locale, content string) {
	t.Helper()
	path := filepath.Join(dir, i18n.CatalogFileName(locale))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
}

func TestLoadCatalog_Lookup(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "fr", "hello = \"bonjour\"\nbye = \"au revoir\"\n")

	catalog, err := i18n.LoadCatalog(dir, "fr")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if got := catalog.T("hello"); got != "bonjour" {
		t.Errorf("expected bonjour, got %q", got)
	}
	if got := catalog.T("missing_key"); got != "missing_key" {
		t.Errorf("expected missing keys to pass through, got %q", got)
	}
	if catalog.Locale() != "fr" {
		t.Errorf("expected locale fr, got %q", catalog.Locale())
	}
	if catalog.Len() != 2 {
		t.Errorf("expected 2 messages, got %d", catalog.Len())
	}
}

func TestLoadCatalog_TemplateData(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en", "greeting = \"Hello {{.Name}}\"\n")

	catalog, err := i18n.LoadCatalog(dir, "en")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	got := catalog.Td("greeting", map[string]any{"Name": "Ada"})
	if got != "Hello Ada" {
		t.Errorf("expected rendered template, got %q", got)
	}
}

func TestLoadCatalog_Missing(t *testing.T) {
	dir := t.TempDir()

	_, err := i18n.LoadCatalog(dir, "de")
	if !errors.Is(err, apperrors.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

func TestLoadCatalog_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "fr", "this is not toml = = =\n")

	_, err := i18n.LoadCatalog(dir, "fr")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, apperrors.ErrCatalogNotFound) {
		t.Fatal("malformed catalog must not be reported as missing")
	}
}

func TestLoadCatalog_MessagesCopy(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en", "a = \"b\"\n")

	catalog, err := i18n.LoadCatalog(dir, "en")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	messages := catalog.Messages()
	if messages["a"] != "b" {
		t.Fatalf("expected map {a: b}, got %v", messages)
	}
	messages["a"] = "mutated"
	if got := catalog.T("a"); got != "b" {
		t.Errorf("catalog must not observe caller mutations, got %q", got)
	}
}

func TestIdentity(t *testing.T) {
	for _, id := range []string{"", "hello", "some.nested.key"} {
		if got := i18n.Identity(id); got != id {
			t.Errorf("Identity(%q) = %q", id, got)
		}
	}
}
