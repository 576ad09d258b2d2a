// Package s3object loads and saves values as objects in an S3 bucket, using a
// [marshaler.Marshaler] to convert between values and object content.
package s3object

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dogmatiq/serdeconv/driver/aws/internal/awsx"
	"github.com/dogmatiq/serdeconv/driver/aws/internal/s3x"
	"github.com/dogmatiq/serdeconv/internal/errorx"
	"github.com/dogmatiq/serdeconv/internal/syncx"
	"github.com/dogmatiq/serdeconv/marshaler"
)

// API is the subset of the S3 API used by [Bucket]. It is satisfied by
// [*s3.Client].
type API interface {
	GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	CreateBucket(context.Context, *s3.CreateBucketInput, ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// Bucket loads and saves values of type T as objects in an S3 bucket.
type Bucket[T any] struct {
	client    API
	bucket    string
	marshaler marshaler.Marshaler[T]
	options

	createBucketOnce syncx.SucceedOnce
}

type options struct {
	OnRequest    func(any) []func(*s3.Options)
	ContentType  string
	CreateBucket bool
}

// NewBucket returns a [Bucket] that stores values in the named bucket using m
// to encode them.
func NewBucket[T any](
	client API,
	bucket string,
	m marshaler.Marshaler[T],
	opts ...Option,
) *Bucket[T] {
	if bucket == "" {
		panic("bucket name must not be empty")
	}

	b := &Bucket[T]{
		client:    client,
		bucket:    bucket,
		marshaler: m,
		options: options{
			ContentType: "application/octet-stream",
		},
	}

	for _, opt := range opts {
		opt(&b.options)
	}

	return b
}

// Option is a functional option that changes the behavior of [NewBucket].
type Option func(*options)

// WithRequestHook is an [Option] that configures fn as a pre-request hook.
//
// Before each S3 API request, fn is passed a pointer to the input struct, e.g.
// [s3.GetObjectInput], which it may modify in-place. Any functions returned by
// fn are applied to the request's options before the request is sent.
func WithRequestHook(fn func(any) []func(*s3.Options)) Option {
	return func(o *options) {
		o.OnRequest = fn
	}
}

// WithContentType is an [Option] that sets the Content-Type of saved objects.
func WithContentType(t string) Option {
	return func(o *options) {
		o.ContentType = t
	}
}

// WithCreateBucket is an [Option] that creates the bucket before the first
// request if it does not already exist.
func WithCreateBucket() Option {
	return func(o *options) {
		o.CreateBucket = true
	}
}

// Load returns the value stored in the object with the given key.
//
// A failed request, including one for an object that does not exist, is
// reported as a [serdeconv.Other] error. Content that the marshaler rejects is
// reported as a [serdeconv.Invalid] error.
func (b *Bucket[T]) Load(ctx context.Context, key string) (_ T, err error) {
	defer errorx.Wrap(&err, "unable to load %q from the %q bucket", key, b.bucket)

	if err := b.createBucket(ctx); err != nil {
		var zero T
		return zero, err
	}

	res, err := awsx.Do(
		ctx,
		b.client.GetObject,
		b.OnRequest,
		&s3.GetObjectInput{
			Bucket: aws.String(b.bucket),
			Key:    aws.String(key),
		},
	)
	if err != nil {
		var zero T
		return zero, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		var zero T
		return zero, err
	}

	v, err := b.marshaler.Unmarshal(data)
	return v, errorx.Invalid(err)
}

// Save stores v in the object with the given key, replacing any existing
// content.
func (b *Bucket[T]) Save(ctx context.Context, key string, v T) (err error) {
	defer errorx.Wrap(&err, "unable to save %q to the %q bucket", key, b.bucket)

	data, err := b.marshaler.Marshal(v)
	if err != nil {
		return errorx.Invalid(err)
	}

	if err := b.createBucket(ctx); err != nil {
		return err
	}

	_, err = awsx.Do(
		ctx,
		b.client.PutObject,
		b.OnRequest,
		&s3.PutObjectInput{
			Bucket:        aws.String(b.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(data),
			ContentLength: aws.Int64(int64(len(data))),
			ContentType:   aws.String(b.ContentType),
		},
	)
	return err
}

func (b *Bucket[T]) createBucket(ctx context.Context) error {
	if !b.CreateBucket {
		return nil
	}

	return b.createBucketOnce.Do(
		ctx,
		func(ctx context.Context) error {
			return s3x.CreateBucketIfNotExists(ctx, b.client, b.bucket, b.OnRequest)
		},
	)
}
