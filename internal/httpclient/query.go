package httpclient

import (
	"fmt"
	"net/url"
	"time"
)

// EncodeQuery converts a filter map into query parameters. Nil, empty and
// zero values are skipped, slices repeat the key, times render as RFC3339
// and pointers are dereferenced first.
func EncodeQuery(filters map[string]interface{}) url.Values {
	values := url.Values{}

	for key, raw := range filters {
		switch v := raw.(type) {
		case nil:
			continue
		case string:
			if v != "" {
				values.Add(key, v)
			}
		case []string:
			for _, item := range v {
				if item != "" {
					values.Add(key, item)
				}
			}
		case bool:
			if v {
				values.Add(key, "true")
			}
		case *bool:
			if v != nil {
				values.Add(key, fmt.Sprintf("%t", *v))
			}
		case int:
			if v != 0 {
				values.Add(key, fmt.Sprintf("%d", v))
			}
		case *int:
			if v != nil {
				values.Add(key, fmt.Sprintf("%d", *v))
			}
		case float64:
			values.Add(key, fmt.Sprintf("%g", v))
		case time.Time:
			if !v.IsZero() {
				values.Add(key, v.Format(time.RFC3339))
			}
		case *time.Time:
			if v != nil && !v.IsZero() {
				values.Add(key, v.Format(time.RFC3339))
			}
		default:
			values.Add(key, fmt.Sprintf("%v", v))
		}
	}

	return values
}
