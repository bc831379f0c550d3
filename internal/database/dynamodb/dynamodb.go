// Package dynamodb writes and reads table items through the AWS SDK.
package dynamodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

// MaxBatchSize is the BatchWriteItem request limit.
const MaxBatchSize = 25

const (
	defaultUnprocessedRetries = 8
	defaultBackoff            = 50 * time.Millisecond
)

var validTableName = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,255}$`)

// API is the part of the DynamoDB client used here.
type API interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type Options struct {
	Region   string
	Profile  string
	Endpoint string // e.g. http://localhost:8000 for DynamoDB Local

	// MaxAttempts caps SDK request attempts; 0 keeps the SDK default.
	MaxAttempts int

	BatchSize          int
	UnprocessedRetries int
	Backoff            time.Duration
}

type Client struct {
	api        API
	batchSize  int
	maxRetries int
	backoff    time.Duration
}

// Connect builds a client from the default AWS configuration chain.
func Connect(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}
	if opts.MaxAttempts > 0 {
		loadOpts = append(loadOpts, awsconfig.WithRetryMaxAttempts(opts.MaxAttempts))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, database.Classify(database.ErrConnection, fmt.Errorf("load aws config: %w", err))
	}

	api := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return New(api, opts), nil
}

// New wraps an existing DynamoDB API.
func New(api API, opts Options) *Client {
	c := &Client{
		api:        api,
		batchSize:  opts.BatchSize,
		maxRetries: opts.UnprocessedRetries,
		backoff:    opts.Backoff,
	}
	if c.batchSize <= 0 || c.batchSize > MaxBatchSize {
		c.batchSize = MaxBatchSize
	}
	if c.maxRetries <= 0 {
		c.maxRetries = defaultUnprocessedRetries
	}
	if c.backoff <= 0 {
		c.backoff = defaultBackoff
	}
	return c
}

func (c *Client) Table(name, key string) (database.Table, error) {
	if !validTableName.MatchString(name) {
		return nil, fmt.Errorf("invalid DynamoDB table name: %q", name)
	}
	if key == "" {
		return nil, fmt.Errorf("table %s: key attribute is required", name)
	}
	return &table{client: c, name: name, key: key}, nil
}

func (c *Client) Close() error { return nil }

type table struct {
	client *Client
	name   string
	key    string
}

func (t *table) Name() string { return t.name }
func (t *table) Key() string  { return t.key }

func (t *table) BatchWriter() database.Writer {
	return &writer{table: t, buf: database.NewBuffer[stagedItem]()}
}

func (t *table) Get(ctx context.Context, key string, out any) error {
	resp, err := t.client.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            map[string]types.AttributeValue{t.key: &types.AttributeValueMemberS{Value: key}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get %s %s=%s: %w", t.name, t.key, key, classify(err))
	}
	if len(resp.Item) == 0 {
		return fmt.Errorf("%s %s=%s: %w", t.name, t.key, key, database.ErrItemNotFound)
	}
	if err := attributevalue.UnmarshalMap(resp.Item, out); err != nil {
		return database.Classify(database.ErrInvalidItem, fmt.Errorf("decode %s %s=%s: %w", t.name, t.key, key, err))
	}
	return nil
}

// stagedItem is an item already marshalled into attribute values.
type stagedItem struct {
	key  string
	item map[string]types.AttributeValue
}

func (s stagedItem) PrimaryKey() string { return s.key }

type writer struct {
	table *table
	buf   *database.Buffer[stagedItem]
}

func (w *writer) Put(ctx context.Context, item database.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return database.Classify(database.ErrInvalidItem, fmt.Errorf("marshal %s: %w", item.PrimaryKey(), err))
	}
	if _, ok := av[w.table.key]; !ok {
		return database.Classify(database.ErrInvalidItem, fmt.Errorf("item %s has no %s attribute", item.PrimaryKey(), w.table.key))
	}
	if w.buf.Add(stagedItem{key: item.PrimaryKey(), item: av}) >= w.table.client.batchSize {
		return w.Flush(ctx)
	}
	return nil
}

func (w *writer) Flush(ctx context.Context) error {
	if w.buf.Len() == 0 {
		return nil
	}
	staged := w.buf.Drain()
	requests := make([]types.WriteRequest, 0, len(staged))
	for _, s := range staged {
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: s.item}})
	}
	return w.send(ctx, requests)
}

// send writes one batch and resubmits whatever the service reports as
// unprocessed, backing off between rounds.
func (w *writer) send(ctx context.Context, requests []types.WriteRequest) error {
	c := w.table.client
	pending := map[string][]types.WriteRequest{w.table.name: requests}

	for attempt := 0; ; attempt++ {
		resp, err := c.api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("batch write %s: %w", w.table.name, classify(err))
		}
		if len(resp.UnprocessedItems) == 0 {
			return nil
		}
		if attempt >= c.maxRetries {
			left := 0
			for _, reqs := range resp.UnprocessedItems {
				left += len(reqs)
			}
			return database.Classify(database.ErrThroughput,
				fmt.Errorf("batch write %s: %d items still unprocessed after %d attempts", w.table.name, left, attempt+1))
		}
		pending = resp.UnprocessedItems
		if err := sleep(ctx, c.backoff<<attempt); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
