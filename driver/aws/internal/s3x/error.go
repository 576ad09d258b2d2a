package s3x

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// IsNotExists returns true if err indicates that the requested object or
// bucket was not found.
func IsNotExists(err error) bool {
	if err == nil {
		return false
	}

	var (
		notFound     *types.NotFound
		noSuchKey    *types.NoSuchKey
		noSuchBucket *types.NoSuchBucket
	)

	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
		return true
	}

	// Some S3-compatible services report missing objects using only an error
	// code.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}

	return false
}

// IgnoreNotExists returns nil if err indicates that the requested object or
// bucket was not found; otherwise it returns err.
func IgnoreNotExists(err error) error {
	if IsNotExists(err) {
		return nil
	}
	return err
}

// IsAlreadyExists returns true if err indicates that the bucket already
// exists.
func IsAlreadyExists(err error) bool {
	var (
		exists *types.BucketAlreadyExists
		owned  *types.BucketAlreadyOwnedByYou
	)

	return errors.As(err, &exists) || errors.As(err, &owned)
}

// IgnoreAlreadyExists returns nil if err indicates that the bucket already
// exists; otherwise it returns err.
func IgnoreAlreadyExists(err error) error {
	if IsAlreadyExists(err) {
		return nil
	}
	return err
}
