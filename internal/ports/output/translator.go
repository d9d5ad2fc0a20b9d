package output

// MessageTranslator exposes the localization contract for backend messages.
// Implementations map raw upstream text to user-facing Portuguese and fall
// back to the original message when nothing matches.
type MessageTranslator interface {
	// TranslateError localizes a backend error message.
	TranslateError(message string) string
	// TranslateSuccess localizes a backend success message.
	TranslateSuccess(message string) string
}
