package types

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

var registerOnce sync.Once

// registerValidators reports fields by their JSON name and adds the slug rule
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.IsSlug(fl.Field().String())
	})
}

// FieldErrors collects validation messages keyed by request field
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// Validatable requests check their storage-backed rules (unique, exists)
// after the binding rules have run. id is the row being updated, 0 on create.
type Validatable interface {
	ValidateWith(ctx context.Context, deps *Dependencies, id uint, errs FieldErrors) error
}

// BindAndValidate decodes the JSON body into req and runs every rule.
// It writes the 400, 422 or 500 response itself and returns false when the
// handler must stop.
func BindAndValidate(c *gin.Context, deps *Dependencies, req Validatable, id uint) bool {
	registerOnce.Do(registerValidators)

	errs := FieldErrors{}
	err := c.ShouldBindJSON(req)

	// a wrongly typed field stops binding before the struct rules run
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		errs.Add(typeErr.Field, typeMessage(typeErr))
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			SendBadRequest(c, "Invalid request body")
			return false
		}
		for _, fe := range verrs {
			if !errs.Has(fe.Field()) {
				errs.Add(fe.Field(), fieldMessage(fe))
			}
		}
	}

	if err := req.ValidateWith(c.Request.Context(), deps, id, errs); err != nil {
		SendError(c, err, "")
		return false
	}
	if len(errs) > 0 {
		SendValidationErrors(c, errs)
		return false
	}
	return true
}

func attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func fieldMessage(fe validator.FieldError) string {
	attr := attribute(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", attr, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", attr, fe.Param())
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", attr)
	case "slug":
		return fmt.Sprintf("The %s field must only contain lowercase letters, numbers and dashes.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

func typeMessage(err *json.UnmarshalTypeError) string {
	attr := attribute(err.Field)
	switch err.Type.Kind() {
	case reflect.Bool:
		return fmt.Sprintf("The %s field must be true or false.", attr)
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uint32:
		return fmt.Sprintf("The %s field must be an integer.", attr)
	case reflect.String:
		return fmt.Sprintf("The %s field must be a string.", attr)
	case reflect.Slice:
		return fmt.Sprintf("The %s field must be an array.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

type takenChecker interface {
	Taken(ctx context.Context, column string, value any, exceptID uint) (bool, error)
}

type existsChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// checkUnique fails field when another row already holds value
func checkUnique(ctx context.Context, errs FieldErrors, repo takenChecker, field, value string, id uint) error {
	if errs.Has(field) || value == "" {
		return nil
	}
	taken, err := repo.Taken(ctx, field, value, id)
	if err != nil {
		return err
	}
	if taken {
		errs.Add(field, fmt.Sprintf("The %s has already been taken.", attribute(field)))
	}
	return nil
}

// checkExists fails field when no row has the referenced id
func checkExists(ctx context.Context, errs FieldErrors, repo existsChecker, field string, id *uint) error {
	if errs.Has(field) || id == nil {
		return nil
	}
	ok, err := repo.Exists(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		errs.Add(field, fmt.Sprintf("The selected %s is invalid.", attribute(field)))
	}
	return nil
}
