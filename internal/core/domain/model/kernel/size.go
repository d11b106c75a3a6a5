package kernel

import (
	"errors"
	"strings"

	"icetube/internal/pkg/errs"
	"icetube/internal/pkg/guard"
)

var (
	ErrSizeIsNotConstructed = errors.New("Size must be created via NewSize")
	ErrSizeIsRequired       = errs.NewValueIsRequiredError("size")
)

// Size is the key tying an order to the inventory item it is priced from
// and deducted against (e.g. "small", "extra large").
//
// Sizes are normalized on construction: surrounding whitespace is trimmed,
// inner runs of whitespace collapse to a single space and letters are
// lower-cased. "Medium", " medium " and "MEDIUM" are the same Size.
type Size struct {
	key   string
	guard guard.ConstructorGuard
}

// NewSize normalizes raw and returns ErrSizeIsRequired when nothing is left.
func NewSize(raw string) (Size, error) {
	key := NormalizeSize(raw)
	if key == "" {
		return Size{}, ErrSizeIsRequired
	}

	return Size{
		key:   key,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NormalizeSize applies the Size normalization to a raw string without
// validating it. Persistence adapters use it for lookup keys.
func NormalizeSize(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// String returns the normalized key.
func (s Size) String() string {
	return s.key
}

func (s Size) IsEqual(other Size) bool {
	return s.key == other.key
}

func (s Size) Validate() error {
	return s.guard.Validate(ErrSizeIsNotConstructed)
}
