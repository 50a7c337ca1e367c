package queryparser

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// ParseQueryParams fills the `query:"name"` tagged fields of target (a struct pointer)
// from values. Supported kinds: string, signed and unsigned ints, bool, []string.
// A []string field accepts repeated params and comma separated lists.
func ParseQueryParams(values url.Values, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct")
	}

	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		tag := fieldType.Tag.Get("query")
		if tag == "" {
			continue
		}

		if err := setField(field, values.Get(tag), values[tag]); err != nil {
			return fmt.Errorf("failed to set field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func setField(field reflect.Value, single string, multiple []string) error {
	switch field.Kind() {
	case reflect.String:
		if single != "" {
			field.SetString(strings.TrimSpace(single))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if single != "" {
			val, err := strconv.ParseInt(single, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %s", single)
			}
			field.SetInt(val)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if single != "" {
			val, err := strconv.ParseUint(single, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unsigned integer value: %s", single)
			}
			field.SetUint(val)
		}

	case reflect.Bool:
		if single != "" {
			val, err := strconv.ParseBool(single)
			if err != nil {
				return fmt.Errorf("invalid boolean value: %s", single)
			}
			field.SetBool(val)
		}

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice element type: %s", field.Type().Elem().Kind())
		}
		var out []string
		for _, value := range multiple {
			for _, part := range strings.Split(value, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
		if len(out) > 0 {
			field.Set(reflect.ValueOf(out))
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}
