package config

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" as well as raw nanosecond
// numbers.
type Duration time.Duration

// Std returns the wrapped value as a plain time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
