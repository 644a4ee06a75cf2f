package models

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	eng := en.New()
	translator, _ = ut.New(eng, eng).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	mustRegister("category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	}, "{0} must be one of the predefined categories")
	mustRegister("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(MonthLayout, fl.Field().String())
		return err == nil
	}, "{0} must be a month in YYYY-MM format")
	mustRegister("notzero", func(fl validator.FieldLevel) bool {
		if t, ok := fl.Field().Interface().(time.Time); ok {
			return !t.IsZero()
		}
		return !fl.Field().IsZero()
	}, "{0} is a required field")
}

func mustRegister(tag string, fn validator.Func, text string) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
	err := validate.RegisterTranslation(tag, translator,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field())
			return msg
		})
	if err != nil {
		panic(err)
	}
}

// Validate 统一校验入口，创建与更新共用
// 返回 *ValidationError，包含所有不合法字段
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError("", err.Error())
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(translator),
		})
	}
	return out
}

// Normalize 去除文本字段首尾空白
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.Type = TransactionType(strings.ToLower(strings.TrimSpace(string(t.Type))))
}

// Normalize 去除文本字段首尾空白
func (b *Budget) Normalize() {
	b.Category = strings.TrimSpace(b.Category)
	b.Month = strings.TrimSpace(b.Month)
}
