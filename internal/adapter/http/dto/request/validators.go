package request

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	msisdnPattern  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	msisdnStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the custom binding tags to gin's validator engine.
// Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		registerErr = v.RegisterValidation("msisdn", validateMSISDN)
	})
	return registerErr
}

// validateMSISDN accepts international numbers with or without the leading plus.
func validateMSISDN(fl validator.FieldLevel) bool {
	return msisdnPattern.MatchString(msisdnStripper.Replace(strings.TrimSpace(fl.Field().String())))
}
