// Package sqlstore keeps table items as JSON documents in SQL tables. Each
// table has a text primary key column named after the key attribute and a
// text Item column; the tables must already exist.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

// ItemColumn holds the JSON document.
const ItemColumn = "Item"

const defaultBatchSize = 25

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type dialect struct {
	driver      string
	placeholder squirrel.PlaceholderFormat
	quote       func(string) string
	upsert      func(key, item string) string
}

func doubleQuote(s string) string { return `"` + s + `"` }

var dialects = map[string]dialect{
	"postgresql": {
		driver:      "pgx",
		placeholder: squirrel.Dollar,
		quote:       doubleQuote,
		upsert: func(key, item string) string {
			return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s", key, item, item)
		},
	},
	"mysql": {
		driver:      "mysql",
		placeholder: squirrel.Question,
		quote:       func(s string) string { return "`" + s + "`" },
		upsert: func(_, item string) string {
			return fmt.Sprintf("ON DUPLICATE KEY UPDATE %s = VALUES(%s)", item, item)
		},
	},
	"sqlite": {
		driver:      "sqlite3",
		placeholder: squirrel.Question,
		quote:       doubleQuote,
		upsert: func(key, item string) string {
			return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s", key, item, item)
		},
	},
}

// Provider returns the canonical provider name, or "" if unsupported.
func Provider(name string) string {
	switch name {
	case "postgresql", "postgres":
		return "postgresql"
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return ""
	}
}

type Client struct {
	db        *sql.DB
	dialect   dialect
	qb        squirrel.StatementBuilderType
	batchSize int
}

// Open connects to the database at url and pings it.
func Open(ctx context.Context, provider, url string, batchSize int) (*Client, error) {
	name := Provider(provider)
	if name == "" {
		return nil, fmt.Errorf("unsupported SQL provider: %s", provider)
	}
	dsn, err := DSN(name, url)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialects[name].driver, dsn)
	if err != nil {
		return nil, database.Classify(database.ErrConnection, fmt.Errorf("open %s: %w", name, err))
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", name, classify(err))
	}
	return New(db, name, batchSize)
}

// New wraps an open database handle.
func New(db *sql.DB, provider string, batchSize int) (*Client, error) {
	name := Provider(provider)
	if name == "" {
		return nil, fmt.Errorf("unsupported SQL provider: %s", provider)
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	d := dialects[name]
	return &Client{
		db:        db,
		dialect:   d,
		qb:        squirrel.StatementBuilder.PlaceholderFormat(d.placeholder),
		batchSize: batchSize,
	}, nil
}

// DSN converts a database URL into the form the provider's driver expects.
func DSN(provider, rawURL string) (string, error) {
	switch Provider(provider) {
	case "postgresql":
		return rawURL, nil
	case "sqlite":
		return strings.TrimPrefix(rawURL, "sqlite://"), nil
	case "mysql":
		if !strings.HasPrefix(rawURL, "mysql://") {
			if _, err := mysql.ParseDSN(rawURL); err != nil {
				return "", fmt.Errorf("invalid mysql DSN: %w", err)
			}
			return rawURL, nil
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("invalid mysql URL: %w", err)
		}
		cfg := mysql.NewConfig()
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		if u.Port() == "" {
			cfg.Addr = u.Hostname() + ":3306"
		}
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
		if tls := u.Query().Get("tls"); tls != "" {
			cfg.TLSConfig = tls
		}
		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported SQL provider: %s", provider)
	}
}

func (c *Client) Table(name, key string) (database.Table, error) {
	if !validIdentifier.MatchString(name) {
		return nil, fmt.Errorf("invalid table name: %s", name)
	}
	if !validIdentifier.MatchString(key) {
		return nil, fmt.Errorf("invalid key column for %s: %s", name, key)
	}
	return &table{client: c, name: name, key: key}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
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
	q := t.client.dialect.quote
	query, args, err := t.client.qb.
		Select(q(ItemColumn)).
		From(q(t.name)).
		Where(squirrel.Eq{q(t.key): key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build select for %s: %w", t.name, err)
	}

	var doc string
	if err := t.client.db.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s %s=%s: %w", t.name, t.key, key, database.ErrItemNotFound)
		}
		return fmt.Errorf("get %s %s=%s: %w", t.name, t.key, key, classify(err))
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return database.Classify(database.ErrInvalidItem, fmt.Errorf("decode %s %s=%s: %w", t.name, t.key, key, err))
	}
	return nil
}

// upsertQuery builds a single multi-row insert that replaces rows whose key
// already exists.
func (t *table) upsertQuery(items []database.Item) (string, []any, error) {
	d := t.client.dialect
	insert := t.client.qb.
		Insert(d.quote(t.name)).
		Columns(d.quote(t.key), d.quote(ItemColumn)).
		Suffix(d.upsert(d.quote(t.key), d.quote(ItemColumn)))

	for _, item := range items {
		doc, err := json.Marshal(item)
		if err != nil {
			return "", nil, database.Classify(database.ErrInvalidItem, fmt.Errorf("encode %s: %w", item.PrimaryKey(), err))
		}
		insert = insert.Values(item.PrimaryKey(), string(doc))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert for %s: %w", t.name, err)
	}
	return query, args, nil
}

func (t *table) upsert(ctx context.Context, items []database.Item) error {
	query, args, err := t.upsertQuery(items)
	if err != nil {
		return err
	}
	if _, err := t.client.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("batch write %s: %w", t.name, classify(err))
	}
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
	return w.table.upsert(ctx, w.buf.Drain())
}
