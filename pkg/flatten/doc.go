// Package flatten converts nested string-keyed translation trees into flat
// maps with dot-joined keys.
//
// Internal nodes contribute path segments, leaves contribute the terminal
// value. Non-string leaves are stringified, so numeric or boolean values in
// locale sources become their textual representation:
//
//	tree := map[string]any{
//		"weather": map[string]any{
//			"cloudy": "Cloudy",
//		},
//	}
//	flat := flatten.Flatten(tree)
//	// flat["weather.cloudy"] == "Cloudy"
//
// The result is deterministic as a set of key/value pairs; map iteration
// order does not affect it.
package flatten
