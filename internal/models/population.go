package models

import (
	"bytes"
	"errors"
	"strconv"
)

// Population is a 64-bit population count serialized as a JSON string,
// so that counts above the 32-bit range survive JSON round-trips intact.
type Population int64

// MarshalJSON renders the count as a decimal string.
func (p Population) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(p), 10))), nil
}

// UnmarshalJSON accepts either a decimal string or a bare JSON number.
func (p *Population) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" || s == "" {
		return errors.New("population must be a number or a numeric string")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*p = Population(v)
	return nil
}

// Int64 returns the underlying count.
func (p Population) Int64() int64 {
	return int64(p)
}
