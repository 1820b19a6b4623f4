// Package sqlstore implements store.Store on database/sql, backed by SQLite (modernc) or
// PostgreSQL (pgx).
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/store"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	pgUniqueViolation = "23505"
)

// Store is a SQL-backed store.Store.
type Store struct {
	db     *sql.DB
	driver string
}

var _ store.Store = (*Store)(nil)

// NormalizeDriver maps config aliases to database/sql driver names.
func NormalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return DriverSQLite
	case "postgres", "postgresql", "pgsql", "pgx":
		return DriverPostgres
	default:
		return driver
	}
}

// Open connects, pings and migrates the schema.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	driver = NormalizeDriver(driver)
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported profile database driver: %s (supported: sqlite, postgres)", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s requires a DSN", driver)
	}

	if driver == DriverSQLite {
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// One connection keeps :memory: databases alive and serializes writers.
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL,
		email_key  TEXT NOT NULL UNIQUE,
		full_name  TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		value      TEXT PRIMARY KEY,
		kind       TEXT NOT NULL,
		profile_id TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL,
		expires_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS auth_tokens_profile ON auth_tokens (profile_id)`,
}

func (s *Store) GetProfile(ctx context.Context, id string) (profiles.Profile, error) {
	return s.scanProfile(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, email, full_name, avatar_url, created_at, updated_at FROM profiles WHERE id = ?`), id))
}

func (s *Store) GetProfileByEmail(ctx context.Context, email string) (profiles.Profile, error) {
	return s.scanProfile(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, email, full_name, avatar_url, created_at, updated_at FROM profiles WHERE email_key = ?`), emailKey(email)))
}

func (s *Store) CreateProfile(ctx context.Context, p profiles.Profile) error {
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO profiles (id, email, email_key, full_name, avatar_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		p.ID, p.Email, emailKey(p.Email), p.FullName, p.AvatarURL, toUnix(p.CreatedAt), toUnix(p.UpdatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrConflict
		}
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (s *Store) UpdateProfile(ctx context.Context, p profiles.Profile) error {
	res, err := s.db.ExecContext(ctx, s.rebind(
		`UPDATE profiles SET full_name = ?, avatar_url = ?, updated_at = ? WHERE id = ?`),
		p.FullName, p.AvatarURL, toUnix(p.UpdatedAt), p.ID)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return requireRow(res)
}

func (s *Store) SaveToken(ctx context.Context, t store.Token) error {
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO auth_tokens (value, kind, profile_id, email, created_at, expires_at) VALUES (?, ?, ?, ?, ?, ?)`),
		t.Value, string(t.Kind), t.ProfileID, t.Email, toUnix(t.CreatedAt), toUnix(t.ExpiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrConflict
		}
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) GetToken(ctx context.Context, value string, kind store.TokenKind) (store.Token, error) {
	return scanToken(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT value, kind, profile_id, email, created_at, expires_at FROM auth_tokens WHERE value = ? AND kind = ?`),
		value, string(kind)))
}

// ConsumeToken deletes and returns the token in one statement so it can only be used once.
func (s *Store) ConsumeToken(ctx context.Context, value string, kind store.TokenKind) (store.Token, error) {
	return scanToken(s.db.QueryRowContext(ctx, s.rebind(
		`DELETE FROM auth_tokens WHERE value = ? AND kind = ?
		 RETURNING value, kind, profile_id, email, created_at, expires_at`),
		value, string(kind)))
}

func (s *Store) DeleteToken(ctx context.Context, value string) error {
	if _, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM auth_tokens WHERE value = ?`), value); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (s *Store) scanProfile(row *sql.Row) (profiles.Profile, error) {
	var p profiles.Profile
	var created, updated int64
	if err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.AvatarURL, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, store.ErrNotFound
		}
		return profiles.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	p.CreatedAt = fromUnix(created)
	p.UpdatedAt = fromUnix(updated)
	return p, nil
}

func scanToken(row *sql.Row) (store.Token, error) {
	var t store.Token
	var kind string
	var created, expires int64
	if err := row.Scan(&t.Value, &kind, &t.ProfileID, &t.Email, &created, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Token{}, store.ErrNotFound
		}
		return store.Token{}, fmt.Errorf("scan token: %w", err)
	}
	t.Kind = store.TokenKind(kind)
	t.CreatedAt = fromUnix(created)
	t.ExpiresAt = fromUnix(expires)
	return t, nil
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// ensureSQLiteDir creates the parent directory of a file-backed SQLite DSN.
func ensureSQLiteDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.Contains(path, ":memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixNano()
}

func fromUnix(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
