package patch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

// FillEmptyOps returns "add" operations for every leaf of candidate whose
// path is absent from current. Present paths are never touched, so applying
// the result can only add information.
func FillEmptyOps[T any](current, candidate T) ([]Operation, error) {
	currentMap, err := toMap(current)
	if err != nil {
		return nil, fmt.Errorf("failed to convert current state: %w", err)
	}
	candidateMap, err := toMap(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to convert candidate state: %w", err)
	}
	ops := make([]Operation, 0)
	fillFromMap("", currentMap, candidateMap, &ops)
	return ops, nil
}

// FillEmpty assigns every field of candidate that is still empty in current.
func FillEmpty[T any](current, candidate T) (T, error) {
	ops, err := FillEmptyOps(current, candidate)
	if err != nil {
		return current, err
	}
	return ApplyRFC6902(current, ops)
}

func toMap(v any) (map[string]any, error) {
	data, err := sonic.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if string(data) == "null" {
		return out, nil
	}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fillFromMap(prefix string, current, candidate map[string]any, ops *[]Operation) {
	keys := make([]string, 0, len(candidate))
	for key := range candidate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := candidate[key]
		if isUnset(value) {
			continue
		}
		path := prefix + "/" + escapeJSONPointer(key)
		existing, ok := current[key]
		if !ok || existing == nil {
			*ops = append(*ops, Operation{Op: OperationAdd, Path: path, Value: value})
			continue
		}
		candidateChild, isMap := value.(map[string]any)
		if !isMap {
			continue
		}
		if currentChild, ok := existing.(map[string]any); ok {
			fillFromMap(path, currentChild, candidateChild, ops)
		}
	}
}

func escapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// isUnset treats false and 0 as real values; only absent data is skipped.
func isUnset(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
