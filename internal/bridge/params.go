package bridge

import (
	"encoding/json"
	"fmt"
)

// getString extracts a string argument
func getString(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// getNumber extracts a numeric argument. JSON numbers decode as float64.
func getNumber(args map[string]interface{}, key string) (float64, bool) {
	val, ok := args[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// getNumbers extracts an array of numbers
func getNumbers(args map[string]interface{}, key string) ([]float64, bool) {
	val, ok := args[key]
	if !ok {
		return nil, false
	}

	arr, ok := val.([]interface{})
	if !ok {
		if typed, ok := val.([]float64); ok {
			return typed, true
		}
		return nil, false
	}

	result := make([]float64, 0, len(arr))
	for _, v := range arr {
		num, ok := toFloat(v)
		if !ok {
			return nil, false
		}
		result = append(result, num)
	}
	return result, true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func requiredString(args map[string]interface{}, key string) (string, *Result) {
	s, ok := getString(args, key)
	if !ok {
		res, _ := failure(fmt.Sprintf("%s parameter required", key))
		return "", res
	}
	return s, nil
}

func requiredNumber(args map[string]interface{}, key string) (float64, *Result) {
	n, ok := getNumber(args, key)
	if !ok {
		res, _ := failure(fmt.Sprintf("%s must be a number", key))
		return 0, res
	}
	return n, nil
}
