package docling

import (
	"encoding/json"
	"maps"
	"mime/multipart"
	"slices"
	"strconv"
)

// writeFields flattens option fields into form fields the way the server's
// multipart parser expects them: lists become repeated fields and objects
// are sent as JSON strings.
func writeFields(w *multipart.Writer, fields map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		values, ok := fields[key].([]any)

		if !ok {
			values = []any{fields[key]}
		}

		for _, v := range values {
			if v == nil {
				continue
			}

			val, err := formValue(v)

			if err != nil {
				return err
			}

			if err := w.WriteField(key, val); err != nil {
				return err
			}
		}
	}

	return nil
}

func formValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil

	case bool:
		return strconv.FormatBool(v), nil

	case json.Number:
		return v.String(), nil

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	data, err := json.Marshal(v)

	if err != nil {
		return "", err
	}

	return string(data), nil
}
