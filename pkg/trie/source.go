package trie

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/tidwall/gjson"
)

// project flattens source into the words to insert.
func project(source any, key string) ([]string, error) {
	if words, ok := source.([]string); ok {
		return words, nil
	}

	seq := reflect.ValueOf(source)
	if !seq.IsValid() || (seq.Kind() != reflect.Slice && seq.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: input must be a sequence", ErrInvalidInputKind)
	}

	elems := make([]reflect.Value, seq.Len())
	allStrings := true
	for i := range elems {
		elems[i] = unwrap(seq.Index(i))
		if !elems[i].IsValid() || elems[i].Kind() != reflect.String {
			allStrings = false
		}
	}

	if allStrings {
		words := make([]string, len(elems))
		for i, e := range elems {
			words[i] = e.String()
		}
		return words, nil
	}

	if key == "" {
		return nil, fmt.Errorf("%w: elements must be strings or records with the given key", ErrInvalidInputKind)
	}

	words := make([]string, 0, len(elems))
	for i, e := range elems {
		value, isRecord := field(e, key)
		if !isRecord {
			return nil, fmt.Errorf("%w: elements must be strings or records with the given key (element %d is %s)",
				ErrInvalidInputKind, i, describe(e))
		}
		// Missing and empty values are treated alike: nothing is inserted.
		if value == "" {
			log.Debug("Skipping record", "index", i, "key", key)
			continue
		}
		words = append(words, value)
	}
	return words, nil
}

// unwrap strips interface wrappers so the concrete kind is visible.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

// field extracts the string stored under key in record e.
// The second value is false when e is not a record at all.
func field(e reflect.Value, key string) (string, bool) {
	if !e.IsValid() {
		return "", false
	}

	switch {
	case e.Kind() == reflect.Slice && e.Type().Elem().Kind() == reflect.Uint8:
		return jsonField(e.Bytes(), key)
	case e.Kind() == reflect.Map:
		return mapField(e, key)
	case e.Kind() == reflect.Struct:
		return structField(e.Interface(), key)
	case e.Kind() == reflect.Pointer && e.Type().Elem().Kind() == reflect.Struct:
		if e.IsNil() {
			return "", true
		}
		return structField(e.Interface(), key)
	}
	return "", false
}

// jsonField reads key from a JSON object such as a json.RawMessage.
// The key is a gjson path, so nested values like "author.name" resolve too.
func jsonField(doc []byte, key string) (string, bool) {
	if !gjson.ValidBytes(doc) {
		return "", false
	}
	parsed := gjson.ParseBytes(doc)
	if !parsed.IsObject() {
		return "", false
	}
	res := parsed.Get(key)
	if res.Type != gjson.String {
		return "", true
	}
	return res.Str, true
}

func mapField(m reflect.Value, key string) (string, bool) {
	kt := m.Type().Key()
	if kt.Kind() != reflect.String {
		return "", false
	}
	v := unwrap(m.MapIndex(reflect.ValueOf(key).Convert(kt)))
	if !v.IsValid() || v.Kind() != reflect.String {
		return "", true
	}
	return v.String(), true
}

// structField projects a struct onto a map (honouring mapstructure tags) and
// looks key up, falling back to a case-insensitive match on field names.
func structField(record any, key string) (string, bool) {
	fields := make(map[string]any)
	if err := mapstructure.Decode(record, &fields); err != nil {
		log.Debugf("Failed to project record %T: %v", record, err)
		return "", false
	}

	v, ok := fields[key]
	if !ok {
		for name, candidate := range fields {
			if strings.EqualFold(name, key) {
				v, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return "", true
	}
	sv := unwrap(reflect.ValueOf(v))
	if !sv.IsValid() || sv.Kind() != reflect.String {
		return "", true
	}
	return sv.String(), true
}

func describe(e reflect.Value) string {
	if !e.IsValid() {
		return "nil"
	}
	return e.Type().String()
}
