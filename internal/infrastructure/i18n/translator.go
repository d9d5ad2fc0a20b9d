package i18n

import (
	"embed"
	"log"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/Ildo7Cuema/Mini-pautas-sub009/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.MessageTranslator port.
var _ output.MessageTranslator = (*Translator)(nil)

// translation is a catalog entry with its localized text resolved.
type translation struct {
	source string
	lower  string
	text   string
}

// Translator maps raw backend messages (Supabase auth and Postgres errors,
// plus a handful of success confirmations) to localized user-facing text.
// All lookups run against tables resolved once at construction, so the
// methods are pure and safe for unsynchronized concurrent use.
type Translator struct {
	errors  []translation
	success map[string]string

	duplicateNumeroProcesso string
	duplicateValue          string
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "pt").
//
// It loads translations from the embedded active.*.toml files and resolves
// the full catalog up front; an entry whose localized text cannot be resolved
// keeps its upstream source text.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Portuguese
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.pt.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	localizer := i18n.NewLocalizer(bundle, tag.String())
	resolve := func(id, fallback string) string {
		msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			log.Printf("i18n: localize failed (id=%s): %v", id, err)
			return fallback
		}
		return msg
	}

	t := &Translator{
		errors:  make([]translation, 0, len(errorCatalog)),
		success: make(map[string]string, len(successCatalog)),

		duplicateNumeroProcesso: resolve(msgDuplicateNumeroProcesso, "numero de processo already in use"),
		duplicateValue:          resolve(msgDuplicateValue, "value already exists"),
	}
	for _, e := range errorCatalog {
		t.errors = append(t.errors, translation{
			source: e.source,
			lower:  strings.ToLower(e.source),
			text:   resolve(e.id, e.source),
		})
	}
	for _, e := range successCatalog {
		t.success[e.source] = resolve(e.id, e.source)
	}
	return t
}

// TranslateError localizes a backend error message. Matching is attempted in
// order: the Postgres uniqueness special case, an exact table match, then a
// case-insensitive substring match in catalog order (first entry wins). An
// unrecognized message is returned unchanged.
func (t *Translator) TranslateError(message string) string {
	// Violação de unicidade (SQLSTATE 23505) antes de qualquer consulta à
	// tabela, para distinguir o número de processo dos demais campos únicos.
	if strings.Contains(message, "23505") || strings.Contains(message, "duplicate key") {
		if strings.Contains(message, "alunos_numero_processo_key") || strings.Contains(message, "numero_processo") {
			return t.duplicateNumeroProcesso
		}
		return t.duplicateValue
	}

	for _, tr := range t.errors {
		if tr.source == message {
			return tr.text
		}
	}

	lower := strings.ToLower(message)
	for _, tr := range t.errors {
		if strings.Contains(lower, tr.lower) {
			return tr.text
		}
	}

	return message
}

// TranslateSuccess localizes a backend success message. Lookup is exact only;
// an unrecognized message is returned unchanged.
func (t *Translator) TranslateSuccess(message string) string {
	if text, ok := t.success[message]; ok {
		return text
	}
	return message
}

var defaultTranslator = sync.OnceValue(func() *Translator {
	return NewTranslator("pt")
})

// TranslateError localizes a backend error message using the default
// Portuguese translator.
func TranslateError(message string) string {
	return defaultTranslator().TranslateError(message)
}

// TranslateSuccess localizes a backend success message using the default
// Portuguese translator.
func TranslateSuccess(message string) string {
	return defaultTranslator().TranslateSuccess(message)
}
