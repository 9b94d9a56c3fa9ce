// Package builder constructs typed records programmatically from loose
// field maps, the documented contract for tests and integrations.
package builder

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/openpurse/go-openpurse/internal/models"
)

// factories maps schema keys to blank typed records. Unknown keys fall back
// to the base record.
var factories = map[string]func() models.Message{
	"pacs.002": func() models.Message { return &models.Pacs002Message{} },
	"pacs.004": func() models.Message { return &models.Pacs004Message{} },
	"pacs.008": func() models.Message { return &models.Pacs008Message{} },
	"pacs.009": func() models.Message { return &models.Pacs009Message{} },
	"camt.004": func() models.Message { return &models.Camt004Message{} },
	"camt.029": func() models.Message { return &models.Camt029Message{} },
	"camt.052": func() models.Message { return &models.Camt052Message{} },
	"camt.053": func() models.Message { return &models.Camt053Message{} },
	"camt.054": func() models.Message { return &models.Camt054Message{} },
	"camt.056": func() models.Message { return &models.Camt056Message{} },
	"camt.086": func() models.Message { return &models.Camt086Message{} },
	"pain.001": func() models.Message { return &models.Pain001Message{} },
	"pain.002": func() models.Message { return &models.Pain002Message{} },
	"pain.008": func() models.Message { return &models.Pain008Message{} },
	"acmt.007": func() models.Message { return &models.Acmt007Message{} },
	"acmt.015": func() models.Message { return &models.Acmt015Message{} },
	"setr.004": func() models.Message { return &models.Setr004Message{} },
	"setr.010": func() models.Message { return &models.Setr010Message{} },
	"fxtr.014": func() models.Message { return &models.Fxtr014Message{} },
	"sese.023": func() models.Message { return &models.Sese023Message{} },
}

// Fields is the loose input map. Values may be string, *string, int, bool
// pointers thereof, []models.Detail, []map[string]string, []string or
// *models.PostalAddress; anything not assignable to the target field is
// silently dropped.
type Fields map[string]any

// Build constructs the typed record for a schema key and populates it from
// loose fields. Keys are normalized to snake_case, so "MessageID",
// "messageId" and "message_id" all address the same field. Unknown keys
// never error.
func Build(schema string, fields Fields) models.Message {
	factory, ok := factories[schema]
	if !ok {
		factory = func() models.Message { return &models.PaymentMessage{} }
	}
	msg := factory()

	normalized := make(map[string]any, len(fields))
	for k, v := range fields {
		normalized[strcase.ToSnake(k)] = v
	}

	populate(reflect.ValueOf(msg).Elem(), normalized)

	return msg
}

// Schemas lists the known schema keys.
func Schemas() []string {
	keys := make([]string, 0, len(factories))
	for k := range factories {
		keys = append(keys, k)
	}

	return keys
}

// populate walks the struct fields, recursing into the embedded base
// record, and assigns any matching input value.
func populate(v reflect.Value, fields map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			populate(v.Field(i), fields)
			continue
		}

		name := jsonName(field)
		if name == "" {
			continue
		}
		raw, ok := fields[name]
		if !ok || raw == nil {
			continue
		}
		assign(v.Field(i), raw)
	}
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return strcase.ToSnake(field.Name)
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}

	return tag
}

// assign converts a loose value onto a typed field, dropping mismatches.
func assign(target reflect.Value, raw any) {
	switch target.Interface().(type) {
	case *string:
		if s, ok := asString(raw); ok {
			target.Set(reflect.ValueOf(&s))
		}
	case *int:
		if n, ok := asInt(raw); ok {
			target.Set(reflect.ValueOf(&n))
		}
	case []models.Detail:
		if details, ok := asDetails(raw); ok {
			target.Set(reflect.ValueOf(details))
		}
	case []string:
		if ss, ok := raw.([]string); ok {
			target.Set(reflect.ValueOf(ss))
		}
	case *models.PostalAddress:
		if addr, ok := raw.(*models.PostalAddress); ok {
			target.Set(reflect.ValueOf(addr))
		} else if addr, ok := raw.(models.PostalAddress); ok {
			target.Set(reflect.ValueOf(&addr))
		}
	}
}

func asString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case *string:
		if v != nil {
			return *v, true
		}
	}

	return "", false
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case *int:
		if v != nil {
			return *v, true
		}
	}

	return 0, false
}

func asDetails(raw any) ([]models.Detail, bool) {
	switch v := raw.(type) {
	case []models.Detail:
		return v, true
	case []map[string]string:
		details := make([]models.Detail, len(v))
		for i, m := range v {
			details[i] = models.Detail(m)
		}
		return details, true
	}

	return nil, false
}
