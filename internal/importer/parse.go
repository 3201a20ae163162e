package importer

import (
	"strconv"
	"strings"
)

// Field helpers shared by the GeoNames importers. Parse failures degrade to
// nil/zero instead of aborting the row; column-count checks happen earlier.

func cleanStr(v string) string {
	return strings.TrimSpace(v)
}

func intOrNil(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func int64OrZero(v string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func floatOrNil(v string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &f
}
