package s3x

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dogmatiq/serdeconv/internal/x/xtesting"
)

// NewTestClient returns a new S3 client for use in a test.
//
// The test is skipped unless SERDECONV_TEST_MINIO_ENDPOINT is set.
func NewTestClient(t testing.TB) *s3.Client {
	endpoint := os.Getenv("SERDECONV_TEST_MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("SERDECONV_TEST_MINIO_ENDPOINT is not set")
	}

	accessKey := os.Getenv("SERDECONV_TEST_MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minio"
	}

	secretKey := os.Getenv("SERDECONV_TEST_MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "password"
	}

	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRetryer(
			func() aws.Retryer {
				return aws.NopRetryer{}
			},
		),
	)
	if err != nil {
		t.Fatal(err)
	}

	return s3.NewFromConfig(
		cfg,
		func(opts *s3.Options) {
			opts.BaseEndpoint = aws.String(endpoint)
			opts.UsePathStyle = true
		},
	)
}

// NewTestBucket creates a uniquely named bucket that is deleted, along with
// its contents, when the test ends.
func NewTestBucket(t testing.TB, client *s3.Client) string {
	bucket := xtesting.UniqueName("bucket")

	if err := CreateBucketIfNotExists(t.Context(), client, bucket, nil); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := deleteBucket(ctx, client, bucket); err != nil {
			t.Error(err)
		}
	})

	return bucket
}

func deleteBucket(ctx context.Context, client *s3.Client, bucket string) error {
	for {
		res, err := client.ListObjectsV2(
			ctx,
			&s3.ListObjectsV2Input{
				Bucket: aws.String(bucket),
			},
		)
		if err != nil {
			return IgnoreNotExists(err)
		}

		if len(res.Contents) == 0 {
			break
		}

		objects := make([]types.ObjectIdentifier, 0, len(res.Contents))
		for _, obj := range res.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}

		if _, err := client.DeleteObjects(
			ctx,
			&s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &types.Delete{
					Objects: objects,
					Quiet:   aws.Bool(true),
				},
			},
		); err != nil {
			return err
		}
	}

	_, err := client.DeleteBucket(
		ctx,
		&s3.DeleteBucketInput{
			Bucket: aws.String(bucket),
		},
	)
	return IgnoreNotExists(err)
}
