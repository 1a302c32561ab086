package cli

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseToolArgs converts key=value pairs from the command line into a tool
// argument map. Values that parse as JSON keep their type (numbers, bools,
// arrays); everything else stays a string, so ticker=AAPL and limit=25 both
// do what the caller expects.
func ParseToolArgs(pairs []string) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		args[key] = parsed
	}
	return args, nil
}
