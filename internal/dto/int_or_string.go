package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IntOrString decodes a JSON integer or a string holding one, as posted by
// HTML form frontends.
type IntOrString int64

func (v *IntOrString) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	s := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", raw)
	}
	*v = IntOrString(n)
	return nil
}

func (v IntOrString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(v), 10)), nil
}

func (v IntOrString) Int64() int64 {
	return int64(v)
}
