// Package i18n provides internationalization support for the lunch service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,el;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid username or password",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.invalid_date":         "Date must be in YYYY-MM-DD format",
			"error.unknown_menu_item":    "Menu item not found",
			"error.unknown_rule":         "Unknown preference rule",

			// Success messages
			"success.item_scheduled":   "Menu item scheduled successfully",
			"success.order_recorded":   "Order recorded successfully",
			"success.preference_saved": "Preference saved successfully",
		},
		"el": {
			// Error messages
			"error.invalid_request":      "Μη έγκυρο αίτημα",
			"error.invalid_request_body": "Μη έγκυρο σώμα αιτήματος",
			"error.internal_error":       "Παρουσιάστηκε μη αναμενόμενο σφάλμα",
			"error.unauthorized":         "Μη εξουσιοδοτημένη πρόσβαση",
			"error.invalid_credentials":  "Λανθασμένο όνομα χρήστη ή κωδικός",
			"error.forbidden":            "Απαγορεύεται",
			"error.not_found":            "Δεν βρέθηκε",
			"error.rate_limit_exceeded":  "Πάρα πολλά αιτήματα, δοκιμάστε ξανά αργότερα",
			"error.invalid_token":        "Μη έγκυρο ή ληγμένο token",
			"error.token_required":       "Απαιτείται token ταυτοποίησης",
			"error.invalid_date":         "Η ημερομηνία πρέπει να έχει μορφή YYYY-MM-DD",
			"error.unknown_menu_item":    "Το πιάτο δεν βρέθηκε",
			"error.unknown_rule":         "Άγνωστος κανόνας προτίμησης",

			// Success messages
			"success.item_scheduled":   "Το πιάτο προγραμματίστηκε με επιτυχία",
			"success.order_recorded":   "Η παραγγελία καταχωρήθηκε με επιτυχία",
			"success.preference_saved": "Η προτίμηση αποθηκεύτηκε με επιτυχία",
		},
		"pt": {
			// Error messages
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.invalid_credentials":  "Nome de usuário ou senha inválidos",
			"error.forbidden":            "Proibido",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",
			"error.invalid_date":         "A data deve estar no formato YYYY-MM-DD",
			"error.unknown_menu_item":    "Prato não encontrado",
			"error.unknown_rule":         "Regra de preferência desconhecida",

			// Success messages
			"success.item_scheduled":   "Prato agendado com sucesso",
			"success.order_recorded":   "Pedido registrado com sucesso",
			"success.preference_saved": "Preferência salva com sucesso",
		},
	}
}
