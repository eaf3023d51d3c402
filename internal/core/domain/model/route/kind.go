package route

import (
	"fmt"
	"strings"

	"routing/internal/pkg/errs"
)

// Kind classifies a stop. Only a Delivery may reference a Pickup.
type Kind int

const (
	// UnknownKind catches uninitialised values.
	UnknownKind Kind = iota
	Pickup
	Delivery
	Other
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "unknown",
		Pickup:      "pickup",
		Delivery:    "delivery",
		Other:       "other",
	}
}

// ParseKind accepts the lower-, upper- or mixed-case name of a valid kind.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for k, name := range getKindStrings() {
		if k != UnknownKind && name == needle {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid stop kind", s))
}

func (k Kind) Validate() error {
	if k != Pickup && k != Delivery && k != Other {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid stop kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}
