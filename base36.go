package seisutil

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Base36Encode converts a non-negative integer to a base36 string using
// the digits 0-9 and A-Z.
func Base36Encode(n int64) (string, error) {
	if n < 0 {
		return "", errors.Errorf("seisutil: cannot base36-encode negative number %d", n)
	}
	return strings.ToUpper(strconv.FormatInt(n, 36)), nil
}

// Base36Decode decodes a base36 encoded non-negative integer. Letter case
// is ignored.
func Base36Decode(s string) (int64, error) {
	return strconv.ParseInt(s, 36, 64)
}
