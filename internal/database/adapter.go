package database

import "context"

// Item is a record that can be written to a table.
type Item interface {
	PrimaryKey() string
}

// Client hands out table handles by name.
type Client interface {
	// Table returns a handle for an existing table whose primary key
	// attribute is key. No request is made until the handle is used.
	Table(name, key string) (Table, error)
	Close() error
}

type Table interface {
	Name() string
	Key() string

	// BatchWriter returns a writer that stages items and writes them in
	// provider sized batches. Callers must Flush it, see WithBatch.
	BatchWriter() Writer

	// Get decodes the item stored under key into out. It returns
	// ErrItemNotFound when no item has that key.
	Get(ctx context.Context, key string, out any) error
}

type Writer interface {
	// Put stages item, replacing any staged item with the same key. It may
	// write a full batch before returning.
	Put(ctx context.Context, item Item) error

	// Flush writes everything staged.
	Flush(ctx context.Context) error
}

// WithBatch runs fn with a batch writer for t and flushes the writer when fn
// returns, including when fn fails. The first error wins.
func WithBatch(ctx context.Context, t Table, fn func(w Writer) error) (err error) {
	w := t.BatchWriter()
	defer func() {
		if ferr := w.Flush(ctx); ferr != nil && err == nil {
			err = ferr
		}
	}()
	return fn(w)
}
