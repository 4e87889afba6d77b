package vindecoder

import (
	"midcar/pkg/serrors"
	"strings"
)

// VINLength is the length of a modern (1981+) VIN.
const VINLength = 17

// ValidateVIN normalizes vin (trim, upper case) and checks its length and
// alphabet. I, O and Q are never used in VINs.
func ValidateVIN(vin string) (string, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))
	if len(vin) != VINLength {
		return "", serrors.With(serrors.ErrBadRequest, "vin must have %d characters, got %d", VINLength, len(vin))
	}
	for i := range len(vin) {
		c := vin[i]
		switch {
		case c >= '0' && c <= '9':
		case c == 'I' || c == 'O' || c == 'Q':
			return "", serrors.With(serrors.ErrBadRequest, "vin contains forbidden character %q", c)
		case c >= 'A' && c <= 'Z':
		default:
			return "", serrors.With(serrors.ErrBadRequest, "vin contains invalid character %q", c)
		}
	}

	return vin, nil
}
