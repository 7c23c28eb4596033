package config

import (
	"reflect"
	"strings"
)

type field struct {
	name string
	env  string
}

func fieldsOf(v any) []field {
	t := reflect.TypeOf(v)
	out := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := strings.SplitN(f.Tag.Get("env"), ",", 2)[0]
		if tag == "" {
			continue
		}
		out = append(out, field{name: f.Name, env: tag})
	}
	return out
}
