package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns extracts all column names from struct "db" tags,
// recursing into embedded structs (like entity.Catalog). Called once
// per repository at initialization, so reflection cost is acceptable.
func ExtractDBColumns[T any]() []string {
	var zero T
	t := reflect.TypeOf(zero)
	return extractColumnsFromType(t)
}

func extractColumnsFromType(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			cols = append(cols, extractColumnsFromType(field.Type)...)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, tag)
	}
	return cols
}

// fieldInfo contains pre-computed metadata about a struct field.
type fieldInfo struct {
	index int
	dbTag string
}

// typeMetadata contains cached reflection metadata for a type.
type typeMetadata struct {
	fields          []fieldInfo
	embeddedIndices []int
}

var typeCache sync.Map // map[reflect.Type]*typeMetadata

func getOrCreateTypeMetadata(t reflect.Type) *typeMetadata {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if cached, ok := typeCache.Load(t); ok {
		return cached.(*typeMetadata)
	}

	meta := &typeMetadata{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)

			if field.Anonymous {
				meta.embeddedIndices = append(meta.embeddedIndices, i)
				continue
			}

			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			meta.fields = append(meta.fields, fieldInfo{index: i, dbTag: tag})
		}
	}

	typeCache.Store(t, meta)
	return meta
}

// StructToMap converts a struct to a column->value map using "db" tags.
// Fields without a tag or tagged "-" are skipped. Type metadata is
// cached, so repeated calls for the same type avoid re-reflection.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	meta := getOrCreateTypeMetadata(rv.Type())

	res := make(map[string]any, len(meta.fields))
	for _, fi := range meta.fields {
		res[fi.dbTag] = rv.Field(fi.index).Interface()
	}
	for _, embIdx := range meta.embeddedIndices {
		for k, v := range StructToMap(rv.Field(embIdx).Interface()) {
			res[k] = v
		}
	}
	return res
}
