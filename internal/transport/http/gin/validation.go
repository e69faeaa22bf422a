package httpgin

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/amesa/housedraw/internal/domain"
)

var registerOnce sync.Once

// registerValidators adds the house_status and langcode tags to gin's
// validator.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		_ = v.RegisterValidation("house_status", func(fl validator.FieldLevel) bool {
			return domain.HouseStatus(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
			return validLangCode(fl.Field().String())
		})
	})
}

func validLangCode(s string) bool {
	if len(s) < 2 || len(s) > 16 {
		return false
	}

	_, err := language.Parse(s)
	return err == nil
}
