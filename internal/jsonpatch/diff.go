// Package jsonpatch computes RFC 6902 patches. The engine uses it to report
// which parameters a request overrode relative to its preset.
package jsonpatch

import (
	"strconv"
	"strings"
)

// Op is a single RFC 6902 operation.
type Op struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

// Diff computes a patch that transforms a into b. Both values should be the
// result of json.Unmarshal into interface{}. Pass "" as path for the root.
func Diff(a, b interface{}, path string) []Op {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Op{{Op: "replace", Path: path, Value: b}}
	}

	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]interface{})
	bArr, bIsArr := b.([]interface{})
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	// Different types or different primitive values.
	if a != b {
		return []Op{{Op: "replace", Path: path, Value: b}}
	}

	return nil
}

func diffObjects(a, b map[string]interface{}, path string) []Op {
	var ops []Op

	for k := range a {
		if _, ok := b[k]; !ok {
			ops = append(ops, Op{Op: "remove", Path: path + "/" + escapeKey(k)})
		}
	}

	for k, bv := range b {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, Op{Op: "add", Path: childPath, Value: bv})
			continue
		}
		ops = append(ops, Diff(av, bv, childPath)...)
	}

	return ops
}

func diffArrays(a, b []interface{}, path string) []Op {
	var ops []Op

	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	for i := 0; i < minLen; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Removals run in reverse order so earlier indices stay valid.
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, Op{Op: "remove", Path: path + "/" + strconv.Itoa(i)})
	}

	for i := minLen; i < len(b); i++ {
		ops = append(ops, Op{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}

	return ops
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
