package format

import (
	"bytes"
	"testing"
)

func TestNewYAMLFormat(t *testing.T) {
	w := bytes.NewBuffer(nil)
	testFormat(&formatSpec{
		Format:  NewYAMLFormat(w),
		Result:  "- a: a1\n  b: true\n  c: shimmed\n- a: b1\n  b: false\n  c: null\n",
		Headers: []string{"a", "b", "c"},
		Lines: [][]interface{}{
			{"a1", true, mode(0)},
			{"b1", false, nil},
		},
	}, w, t)
}

func TestNewYAMLFormat_Empty(t *testing.T) {
	w := bytes.NewBuffer(nil)
	testFormat(&formatSpec{
		Format:  NewYAMLFormat(w),
		Result:  "[]\n",
		Headers: []string{"a"},
	}, w, t)
}

func TestNewFormat_Yaml(t *testing.T) {
	testNewFormat("yaml", t)
}
