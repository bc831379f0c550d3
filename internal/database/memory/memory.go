// Package memory is an in-process table store. Items are kept as JSON so
// reads decode the same way they do from the SQL store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

const defaultBatchSize = 25

type Client struct {
	mu        sync.Mutex
	tables    map[string]map[string][]byte
	fail      error
	writes    int
	batchSize int
}

// New returns a client holding the named, empty tables.
func New(tables ...string) *Client {
	c := &Client{
		tables:    make(map[string]map[string][]byte, len(tables)),
		batchSize: defaultBatchSize,
	}
	for _, name := range tables {
		c.tables[name] = make(map[string][]byte)
	}
	return c
}

// WithBatchSize sets how many items a writer stages before it writes them.
// Non-positive sizes keep the default.
func (c *Client) WithBatchSize(n int) *Client {
	if n > 0 {
		c.batchSize = n
	}
	return c
}

// FailWith makes every later operation return err. A nil err clears it.
func (c *Client) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = err
}

func (c *Client) Table(name, key string) (database.Table, error) {
	if name == "" || key == "" {
		return nil, fmt.Errorf("table name and key are required")
	}
	return &table{client: c, name: name, key: key}, nil
}

func (c *Client) Close() error { return nil }

// Keys lists the keys stored in a table, sorted.
func (c *Client) Keys(name string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.tables[name]))
	for k := range c.tables[name] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Writes counts the batch writes made since the client was created.
func (c *Client) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

func (c *Client) rows(name string) (map[string][]byte, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	rows, ok := c.tables[name]
	if !ok {
		return nil, database.Classify(database.ErrTableNotFound, fmt.Errorf("memory: no such table: %s", name))
	}
	return rows, nil
}

type table struct {
	client *Client
	name   string
	key    string
}

func (t *table) Name() string { return t.name }
func (t *table) Key() string  { return t.key }

func (t *table) BatchWriter() database.Writer {
	return &writer{table: t, buf: database.NewBuffer[database.Item]()}
}

func (t *table) Get(ctx context.Context, key string, out any) error {
	t.client.mu.Lock()
	defer t.client.mu.Unlock()

	rows, err := t.client.rows(t.name)
	if err != nil {
		return err
	}
	data, ok := rows[key]
	if !ok {
		return fmt.Errorf("%s %s=%s: %w", t.name, t.key, key, database.ErrItemNotFound)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return database.Classify(database.ErrInvalidItem, err)
	}
	return nil
}

func (t *table) write(items []database.Item) error {
	encoded := make(map[string][]byte, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return database.Classify(database.ErrInvalidItem, fmt.Errorf("encode %s: %w", item.PrimaryKey(), err))
		}
		encoded[item.PrimaryKey()] = data
	}

	t.client.mu.Lock()
	defer t.client.mu.Unlock()

	rows, err := t.client.rows(t.name)
	if err != nil {
		return err
	}
	for k, v := range encoded {
		rows[k] = v
	}
	t.client.writes++
	return nil
}

type writer struct {
	table *table
	buf   *database.Buffer[database.Item]
}

func (w *writer) Put(ctx context.Context, item database.Item) error {
	if w.buf.Add(item) >= w.table.client.batchSize {
		return w.Flush(ctx)
	}
	return nil
}

func (w *writer) Flush(ctx context.Context) error {
	if w.buf.Len() == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.table.write(w.buf.Drain())
}
