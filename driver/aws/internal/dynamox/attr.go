package dynamox

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AttrAs fetches an attribute of type T from an item.
//
// It returns an error if the attribute is absent or has a different type.
func AttrAs[T types.AttributeValue](
	item map[string]types.AttributeValue,
	name string,
) (T, error) {
	var zero T

	a, ok := item[name]
	if !ok {
		return zero, fmt.Errorf("item is corrupt: missing %q attribute", name)
	}

	v, ok := a.(T)
	if !ok {
		return zero, fmt.Errorf(
			"item is corrupt: %q attribute should be %T not %T",
			name,
			zero,
			a,
		)
	}

	return v, nil
}
