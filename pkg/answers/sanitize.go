package answers

import (
	"encoding/json"
	"fmt"
)

// Sanitize validates and normalizes an untrusted answer map (typically a
// decoded snapshot) into the permitted value shapes:
//
//   - string, bool pass through
//   - numeric types collapse to float64
//   - sequences of strings collapse to []string
//   - maps of scalar strings collapse to map[string]string
//
// Any other shape is an error naming the offending key; the input map is
// never modified, so a failed import cannot corrupt the live session.
func Sanitize(raw map[string]any) (map[string]any, error) {
	clean := make(map[string]any, len(raw))
	for key, value := range raw {
		v, err := sanitizeValue(value)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", key, err)
		}
		clean[key] = v
	}
	return clean, nil
}

func sanitizeValue(value any) (any, error) {
	switch v := value.(type) {
	case string, bool, float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", v.String())
		}
		return f, nil
	case []string:
		return v, nil
	case []any:
		list := make([]string, 0, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("list element %d: expected string, got %T", i, elem)
			}
			list = append(list, s)
		}
		return list, nil
	case map[string]any:
		m := make(map[string]string, len(v))
		for k, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("map entry %q: expected string, got %T", k, elem)
			}
			m[k] = s
		}
		return m, nil
	case map[string]string:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", value)
	}
}
