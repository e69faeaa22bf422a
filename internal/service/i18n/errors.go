package i18n

import "errors"

var (
	ErrInvalidTranslation = errors.New("translation needs a language, a key and a value")
	ErrUnknownLanguage    = errors.New("unknown language")
)
