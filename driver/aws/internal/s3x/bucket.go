package s3x

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dogmatiq/serdeconv/driver/aws/internal/awsx"
)

// BucketCreator is the subset of the S3 API needed to create a bucket.
type BucketCreator interface {
	CreateBucket(context.Context, *s3.CreateBucketInput, ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// CreateBucketIfNotExists creates an S3 bucket. It returns nil if the bucket
// already exists.
func CreateBucketIfNotExists(
	ctx context.Context,
	client BucketCreator,
	bucket string,
	onRequest func(any) []func(*s3.Options),
) error {
	_, err := awsx.Do(
		ctx,
		client.CreateBucket,
		onRequest,
		&s3.CreateBucketInput{
			Bucket: aws.String(bucket),
		},
	)
	return IgnoreAlreadyExists(err)
}
