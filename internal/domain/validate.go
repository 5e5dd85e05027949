package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/route-grade-etl/internal/grade"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func routeValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := v.RegisterValidation("grade_scale", validScale); err != nil {
			panic(fmt.Sprintf("register grade_scale validation: %v", err))
		}
		validate = v
	})
	return validate
}

// validScale accepts the supported scales and grade.Undetermined.
func validScale(fl validator.FieldLevel) bool {
	s := grade.Scale(fl.Field().String())
	if s == grade.Undetermined {
		return true
	}
	_, ok := grade.ParseScale(string(s))
	return ok
}

// ValidateRoute checks an enriched route before it is published.
// A non-nil error lists every failing field.
func ValidateRoute(route Route) error {
	err := routeValidator().Struct(route)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate route %s: %w", route.ID, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("validate route %s: invalid %s", route.ID, strings.Join(fields, ", "))
}
