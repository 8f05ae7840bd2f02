package utils

import (
	"github.com/hokaccha/go-prettyjson"
)

// ToJsonStr renders obj as indented JSON, colored when colored is true.
func ToJsonStr(obj interface{}, colored bool) (string, error) {
	f := prettyjson.NewFormatter()
	f.DisabledColor = !colored
	jsonBytes, err := f.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
