package output

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"
)

// runQuery runs a gojq query over normalized data and returns the
// results. Data must already be in map/slice form.
func runQuery(query string, data interface{}) ([]interface{}, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}

	var results []interface{}
	iter := code.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %v", queryErr)
		}
		results = append(results, v)
	}

	return results, nil
}

// applyJSONPath evaluates a JSONPath expression over normalized data.
func applyJSONPath(data interface{}, path string) (interface{}, error) {
	result, err := jsonpath.Get(path, data)
	if err != nil {
		return nil, fmt.Errorf("invalid --jsonpath: %w", err)
	}
	return result, nil
}
