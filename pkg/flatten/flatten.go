package flatten

import (
	"fmt"
	"maps"
)

// Separator joins path segments of nested keys.
const Separator = "."

// Flatten converts a nested translation tree into a flat map keyed by
// dot-joined paths. Nested maps recurse; every other value becomes a string
// leaf. An empty tree yields an empty (non-nil) map.
func Flatten(tree map[string]any) map[string]string {
	return flattenInto(tree, "")
}

func flattenInto(tree map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(tree))

	for key, value := range tree {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + Separator + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenInto(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+Separator+subKey] = subVal
			}
		case nil:
			result[fullKey] = ""
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
