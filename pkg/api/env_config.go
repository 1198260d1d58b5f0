package api

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"
)

const (
	envTag = "env"
)

var (
	ErrNotPtr    = errors.New("input must be a pointer")
	ErrNotStruct = errors.New("input must be a struct")
)

// OverrideFromEnv sets every field of config for which a <PREFIX>_<FIELDNAME> environment variable exists;
// nested structs use <PREFIX>_<FIELDNAME>_<NESTEDFIELDNAME>
func OverrideFromEnv(config interface{}, prefix string, environmentVariables []string) error {
	return OverrideFromEnvMap(config, prefix, transformEnvironmentVariablesToMap(environmentVariables))
}

func OverrideFromEnvMap(config interface{}, prefix string, environmentVariables map[string]string) error {
	if !strings.HasSuffix(prefix, "_") {
		prefix = strings.ToUpper(prefix) + "_"
	}

	environmentVariables = filterEnvironmentVariablesByPrefix(environmentVariables, prefix)
	if len(environmentVariables) == 0 {
		return nil
	}

	v := reflect.ValueOf(config)
	if v.Kind() != reflect.Ptr {
		return ErrNotPtr
	}

	e := v.Elem()
	if e.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	t := e.Type()

	for i := 0; i < t.NumField(); i++ {
		ef := e.Field(i)
		tf := t.Field(i)

		if !ef.CanSet() {
			continue
		}

		fieldEnvarName := prefix + strings.ToUpper(tf.Name)
		if tag := tf.Tag.Get(envTag); tag != "" {
			fieldEnvarName = prefix + strings.ToUpper(tag)
		}

		if val, ok := environmentVariables[fieldEnvarName]; ok {
			log.Debug().Msgf("Envvar %v exists, overriding value", fieldEnvarName)
			if err := processField(val, ef); err != nil {
				return fmt.Errorf("%s(%q): %w", tf.Name, val, err)
			}
			continue
		}

		nestedFieldsPrefix := fieldEnvarName + "_"
		nestedEnvironmentVariables := filterEnvironmentVariablesByPrefix(environmentVariables, nestedFieldsPrefix)
		if len(nestedEnvironmentVariables) == 0 {
			continue
		}

		switch ef.Kind() {
		case reflect.Ptr:
			if ef.IsNil() {
				if ef.Type().Elem().Kind() != reflect.Struct {
					continue
				}
				ef.Set(reflect.New(ef.Type().Elem()))
			}

			if err := OverrideFromEnvMap(ef.Interface(), nestedFieldsPrefix, nestedEnvironmentVariables); err != nil {
				return err
			}
		case reflect.Struct:
			if err := OverrideFromEnvMap(ef.Addr().Interface(), nestedFieldsPrefix, nestedEnvironmentVariables); err != nil {
				return err
			}
		}
	}

	return nil
}

func transformEnvironmentVariablesToMap(environmentVariables []string) (environmentVariablesMap map[string]string) {
	environmentVariablesMap = make(map[string]string)

	for _, ev := range environmentVariables {
		key, value, _ := strings.Cut(ev, "=")
		if key == "" {
			continue
		}
		environmentVariablesMap[key] = value
	}

	return
}

func filterEnvironmentVariablesByPrefix(environmentVariables map[string]string, prefix string) (filteredEnvironmentVariables map[string]string) {
	filteredEnvironmentVariables = make(map[string]string)

	for key, value := range environmentVariables {
		if strings.HasPrefix(key, prefix) {
			filteredEnvironmentVariables[key] = value
		}
	}

	return
}

func processField(v string, ef reflect.Value) error {
	for ef.Type().Kind() == reflect.Ptr {
		if ef.IsNil() {
			ef.Set(reflect.New(ef.Type().Elem()))
		}
		ef = ef.Elem()
	}

	tf := ef.Type()

	if v == "" {
		return nil
	}

	switch tf.Kind() {
	case reflect.Bool:
		ef.SetBool(ParseFlag(v))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 0, tf.Bits())
		if err != nil {
			return err
		}
		ef.SetInt(i)
	case reflect.Int64:
		if tf.PkgPath() == "time" && tf.Name() == "Duration" {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			ef.SetInt(int64(d))
		} else {
			i, err := strconv.ParseInt(strings.TrimSpace(v), 0, tf.Bits())
			if err != nil {
				return err
			}
			ef.SetInt(i)
		}
	case reflect.String:
		ef.SetString(v)

	// action inputs list values separated by spaces, newlines or commas
	case reflect.Slice:
		vals := strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		s := reflect.MakeSlice(tf, len(vals), len(vals))
		for i, val := range vals {
			if err := processField(val, s.Index(i)); err != nil {
				return fmt.Errorf("%s: %w", val, err)
			}
		}
		ef.Set(s)

	default:
		return fmt.Errorf("cannot decode into %v", tf.Kind())
	}

	return nil
}
