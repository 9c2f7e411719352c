package util

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
)

func initValidator() {
	validate = validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
}

// TranslateError. english messages of validator errors, one per failed field.
func TranslateError(err error) []string {
	validateOnce.Do(initValidator)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, e.Translate(trans))
	}
	return msgs
}

// ValidateStruct. run the validate tags of s. the returned error is tagged with ErrBadParamInput.
func ValidateStruct(s interface{}) error {
	validateOnce.Do(initValidator)

	if err := validate.Struct(s); err != nil {
		return WrapErrorf(err, ErrBadParamInput, "validation error: [%s]", strings.Join(TranslateError(err), ", "))
	}
	return nil
}

// ValidationMessage. message of a ValidateStruct error without the wrapped validator detail.
func ValidationMessage(err error) string {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.msg
	}
	return fmt.Sprint(err)
}
