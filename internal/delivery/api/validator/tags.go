package validator

import (
	"reflect"
	"strings"
)

// fieldName prefers the query tag, then json, then the Go name.
func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"query", "param", "json"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}
