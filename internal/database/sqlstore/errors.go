package sqlstore

import (
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

func classify(err error) error {
	if err == nil {
		return nil
	}
	if kind := kindOf(err); kind != nil {
		return database.Classify(kind, err)
	}
	return err
}

func kindOf(err error) error {
	var (
		pgErr     *pgconn.PgError
		pgConnErr *pgconn.ConnectError
		myErr     *mysql.MySQLError
		liteErr   sqlite3.Error
		netErr    net.Error
	)

	switch {
	case errors.As(err, &pgErr):
		switch {
		case pgErr.Code == "42P01": // undefined_table
			return database.ErrTableNotFound
		case pgErr.Code == "53300": // too_many_connections
			return database.ErrThroughput
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "28"):
			return database.ErrConnection
		case strings.HasPrefix(pgErr.Code, "22"), strings.HasPrefix(pgErr.Code, "23"):
			return database.ErrInvalidItem
		}
	case errors.As(err, &pgConnErr):
		return database.ErrConnection
	case errors.As(err, &myErr):
		switch myErr.Number {
		case 1146: // ER_NO_SUCH_TABLE
			return database.ErrTableNotFound
		case 1044, 1045, 1049:
			return database.ErrConnection
		case 1040, 1203:
			return database.ErrThroughput
		case 1264, 1366, 1406:
			return database.ErrInvalidItem
		}
	case errors.Is(err, mysql.ErrInvalidConn), errors.Is(err, driver.ErrBadConn):
		return database.ErrConnection
	case errors.As(err, &liteErr):
		switch liteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrAuth, sqlite3.ErrNotADB, sqlite3.ErrPerm:
			return database.ErrConnection
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrFull:
			return database.ErrThroughput
		case sqlite3.ErrConstraint, sqlite3.ErrMismatch, sqlite3.ErrTooBig:
			return database.ErrInvalidItem
		case sqlite3.ErrError:
			if strings.Contains(liteErr.Error(), "no such table") {
				return database.ErrTableNotFound
			}
		}
	case errors.As(err, &netErr):
		return database.ErrConnection
	}
	return nil
}
