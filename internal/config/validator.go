package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	columnKeyPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("column_key", func(fl validator.FieldLevel) bool {
			return columnKeyPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("width_spec", func(fl validator.FieldLevel) bool {
			_, err := ParseWidth(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("padding_spec", func(fl validator.FieldLevel) bool {
			_, err := ParsePadding(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("alignment", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseAlignment(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("border_name", func(fl validator.FieldLevel) bool {
			_, ok := components.ParseBorderVariant(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := table.ThemeByName(fl.Field().String(), components.DefaultTheme())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator used for table documents.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocument performs schema and cross-field validation.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return tkerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	keys := make(map[string]int, len(doc.Columns))
	for i, col := range doc.Columns {
		if prev, exists := keys[col.Key]; exists {
			return tkerrors.NewValidationError(fieldFor("columns", i, "key"),
				fmt.Sprintf("duplicate column key %q (also columns[%d])", col.Key, prev), nil)
		}
		keys[col.Key] = i

		if col.MinWidth > 0 && col.MaxWidth > 0 && col.MinWidth > col.MaxWidth {
			return tkerrors.NewValidationError(fieldFor("columns", i, "min_width"), "must not exceed max_width", nil)
		}
	}

	rowKeys := make(map[string]struct{}, len(doc.Rows))
	for i, row := range doc.Rows {
		if row.Key == "" {
			continue
		}
		if _, exists := rowKeys[row.Key]; exists {
			return tkerrors.NewValidationError(fieldFor("rows", i, "key"), fmt.Sprintf("duplicate row key %q", row.Key), nil)
		}
		rowKeys[row.Key] = struct{}{}
	}

	if s := doc.Settings.Sort; s != nil {
		idx, ok := keys[s.Column]
		if !ok {
			return tkerrors.NewValidationError("settings.sort.column", fmt.Sprintf("references unknown column %q", s.Column), nil)
		}
		if !doc.Columns[idx].Sortable {
			return tkerrors.NewValidationError("settings.sort.column", fmt.Sprintf("column %q is not sortable", s.Column), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tkerrors.NewValidationError(field, msg, err)
	}

	return tkerrors.NewValidationError("document", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace, leaving a
// path such as "columns[1].width".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
