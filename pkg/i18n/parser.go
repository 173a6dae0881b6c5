package i18n

import (
	"errors"
	"fmt"
	"maps"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a translation document into flat per-language tables
// keyed by dotted paths.
func ParseYAML(content []byte) (map[string]map[string]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]string, len(doc))
	for lang, val := range doc {
		section, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		table := make(map[string]string)
		if err := flatten(table, "", section); err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidStructure, lang, err)
		}
		result[lang] = table
	}
	return result, nil
}

func flatten(dst map[string]string, prefix string, section map[string]any) error {
	for key, val := range section {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := val.(type) {
		case string:
			dst[path] = v
		case int:
			dst[path] = strconv.Itoa(v)
		case float64:
			dst[path] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			dst[path] = strconv.FormatBool(v)
		case map[string]any:
			if err := flatten(dst, path, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("key %q: unsupported value type %T", path, val)
		}
	}
	return nil
}

func merge(dst, src map[string]map[string]string) {
	for lang, table := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]string, len(table))
		}
		maps.Copy(dst[lang], table)
	}
}
