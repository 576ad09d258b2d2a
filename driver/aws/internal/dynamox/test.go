package dynamox

import (
	"context"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewTestClient returns a new DynamoDB client for use in a test.
//
// The test is skipped unless SERDECONV_TEST_DYNAMODB_ENDPOINT is set, e.g. to
// the address of a DynamoDB Local container.
func NewTestClient(t testing.TB) *dynamodb.Client {
	endpoint := os.Getenv("SERDECONV_TEST_DYNAMODB_ENDPOINT")
	if endpoint == "" {
		t.Skip("SERDECONV_TEST_DYNAMODB_ENDPOINT is not set")
	}

	cfg, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("id", "secret", ""),
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

	return dynamodb.NewFromConfig(
		cfg,
		func(opts *dynamodb.Options) {
			opts.BaseEndpoint = aws.String(endpoint)
		},
	)
}
