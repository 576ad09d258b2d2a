package xtesting

import (
	"fmt"

	"github.com/google/uuid"
)

// UniqueName returns a unique name with the given prefix, suitable for use as
// an S3 bucket or DynamoDB table name.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
