// Package dynamoitem loads and saves values as items in a DynamoDB table,
// using a [marshaler.Marshaler] to convert between values and attribute
// content.
package dynamoitem

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dogmatiq/serdeconv/driver/aws/internal/awsx"
	"github.com/dogmatiq/serdeconv/driver/aws/internal/dynamox"
	"github.com/dogmatiq/serdeconv/internal/errorx"
	"github.com/dogmatiq/serdeconv/marshaler"
)

const (
	// keyAttr is the name of the attribute that stores the key on each item.
	// It is the table's partition key.
	keyAttr = "K"

	// valueAttr is the name of the attribute that stores the encoded value on
	// each item.
	valueAttr = "V"
)

// API is the subset of the DynamoDB API used by [Table]. It is satisfied by
// [*dynamodb.Client].
type API interface {
	GetItem(context.Context, *dynamodb.GetItemInput, ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Table loads and saves values of type T as items in a DynamoDB table.
type Table[T any] struct {
	client    API
	table     string
	marshaler marshaler.Marshaler[T]
	options
}

type options struct {
	OnRequest      func(any) []func(*dynamodb.Options)
	ConsistentRead bool
}

// NewTable returns a [Table] that stores values in the named table using m to
// encode them.
//
// The table must already exist. Use [CreateTable] to create it.
func NewTable[T any](
	client API,
	table string,
	m marshaler.Marshaler[T],
	opts ...Option,
) *Table[T] {
	if table == "" {
		panic("table name must not be empty")
	}

	t := &Table[T]{
		client:    client,
		table:     table,
		marshaler: m,
	}

	for _, opt := range opts {
		opt(&t.options)
	}

	return t
}

// Option is a functional option that changes the behavior of [NewTable].
type Option func(*options)

// WithRequestHook is an [Option] that configures fn as a pre-request hook.
//
// Before each DynamoDB API request, fn is passed a pointer to the input struct,
// e.g. [dynamodb.GetItemInput], which it may modify in-place. Any functions
// returned by fn are applied to the request's options before the request is
// sent.
func WithRequestHook(fn func(any) []func(*dynamodb.Options)) Option {
	return func(o *options) {
		o.OnRequest = fn
	}
}

// WithConsistentRead is an [Option] that makes [Table.Load] use strongly
// consistent reads.
func WithConsistentRead() Option {
	return func(o *options) {
		o.ConsistentRead = true
	}
}

// ItemNotFoundError is the cause of the error returned by [Table.Load] when
// there is no item with the requested key.
type ItemNotFoundError struct {
	Table string
	Key   string
}

func (e ItemNotFoundError) Error() string {
	return fmt.Sprintf("no item with key %q in the %q table", e.Key, e.Table)
}

// Load returns the value stored in the item with the given key.
//
// A failed request, or a request for an item that does not exist, is reported
// as a [serdeconv.Other] error. An item without a binary value attribute, or
// whose value the marshaler rejects, is reported as a [serdeconv.Invalid]
// error.
func (t *Table[T]) Load(ctx context.Context, key string) (_ T, err error) {
	defer errorx.Wrap(&err, "unable to load %q from the %q table", key, t.table)

	var zero T

	out, err := awsx.Do(
		ctx,
		t.client.GetItem,
		t.OnRequest,
		&dynamodb.GetItemInput{
			TableName:      aws.String(t.table),
			Key:            keyOf(key),
			ConsistentRead: aws.Bool(t.ConsistentRead),
		},
	)
	if err != nil {
		return zero, err
	}

	if out.Item == nil {
		return zero, ItemNotFoundError{t.table, key}
	}

	v, err := dynamox.AttrAs[*types.AttributeValueMemberB](out.Item, valueAttr)
	if err != nil {
		return zero, errorx.Invalid(err)
	}

	result, err := t.marshaler.Unmarshal(v.Value)
	return result, errorx.Invalid(err)
}

// Save stores v in the item with the given key, replacing any existing item.
func (t *Table[T]) Save(ctx context.Context, key string, v T) (err error) {
	defer errorx.Wrap(&err, "unable to save %q to the %q table", key, t.table)

	data, err := t.marshaler.Marshal(v)
	if err != nil {
		return errorx.Invalid(err)
	}

	item := keyOf(key)
	item[valueAttr] = &types.AttributeValueMemberB{Value: data}

	_, err = awsx.Do(
		ctx,
		t.client.PutItem,
		t.OnRequest,
		&dynamodb.PutItemInput{
			TableName: aws.String(t.table),
			Item:      item,
		},
	)
	return err
}

func keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttr: &types.AttributeValueMemberS{Value: key},
	}
}

// CreateTable creates a DynamoDB table for use with [Table]. It returns nil if
// the table already exists.
func CreateTable(
	ctx context.Context,
	client *dynamodb.Client,
	table string,
	opts ...Option,
) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return dynamox.CreateTableIfNotExists(
		ctx,
		client,
		table,
		o.OnRequest,
		dynamox.KeyAttr{
			Name:    keyAttr,
			Type:    types.ScalarAttributeTypeS,
			KeyType: types.KeyTypeHash,
		},
	)
}
