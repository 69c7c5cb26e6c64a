package converters

import (
	"strconv"

	"github.com/Station-Manager/errors"
)

// FrequencyText renders a frequency stored in Hz as MHz text with three
// decimal places, e.g. 14320000 -> "14.320".
func FrequencyText(src any) (any, error) {
	const op errors.Op = "converters.FrequencyText"
	hz, err := CheckInt64(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return strconv.FormatFloat(float64(hz)/1e6, 'f', 3, 64), nil
}
