// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/tollgrid/toll"
)

// EdgeRecord is one raw edge record, validated before conversion.
type EdgeRecord struct {
	ID       string `csv:"ID" validate:"required"`
	NextID   string `csv:"NextID" validate:"required"`
	Distance string `csv:"Distance" validate:"required,distance"`
}

// TollContextRecord is one raw toll-context record.
type TollContextRecord struct {
	IDStart   string `csv:"id_start" validate:"required"`
	IDEnd     string `csv:"id_end" validate:"required"`
	Distance  string `csv:"distance" validate:"required,distance"`
	StartDay  string `csv:"start_day" validate:"required,weekday"`
	StartTime string `csv:"start_time" validate:"required,clock"`
	EndDay    string `csv:"end_day" validate:"required,weekday"`
	EndTime   string `csv:"end_time" validate:"required,clock"`
}

// domainMessages are the English texts for the custom tags.
var domainMessages = map[string]string{
	"distance": "{0} must be a finite number >= 0",
	"clock":    "{0} must be a time of day as HH:MM:SS",
	"weekday":  "{0} must be an English day name",
}

// newValidator returns a validator with the domain tags registered, field
// names reported by their csv tag, and English messages for every tag.
func newValidator() (*validator.Validate, ut.Translator) {
	v := validator.New()
	_ = v.RegisterValidation("distance", validateDistance)
	_ = v.RegisterValidation("clock", validateClock)
	_ = v.RegisterValidation("weekday", validateWeekday)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("csv"); name != "" {
			return name
		}
		return fld.Name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(v, trans)
	for tag, text := range domainMessages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(fe.Tag(), fe.Field())
				return msg
			},
		)
	}

	return v, trans
}

var validate, translator = newValidator()

func validateDistance(fl validator.FieldLevel) bool {
	_, err := parseDistance(fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := toll.ParseClock(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, err := toll.ParseDay(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// parseDistance accepts finite decimal numbers >= 0.
func parseDistance(s string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, ErrBadDistance
	}

	return d, nil
}

// check validates rec and converts the first failure into a *RowError.
func check(row int, rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]

	return &RowError{
		Row:     row,
		Column:  fe.Field(),
		Value:   fe.Value().(string),
		Message: fe.Translate(translator),
		Err:     causeOf(fe.Tag()),
	}
}

// causeOf maps a failed tag to its sentinel.
func causeOf(tag string) error {
	switch tag {
	case "required":
		return ErrMissingValue
	case "distance":
		return ErrBadDistance
	case "clock":
		return toll.ErrBadClock
	case "weekday":
		return toll.ErrUnknownDay
	default:
		return errors.New("ingest: failed " + tag + " check")
	}
}
