package assembler

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"document-workers/internal/models"
)

var (
	// ErrRecordNotFound is matched by every NotFoundError.
	ErrRecordNotFound = errors.New("record not found")
	// ErrStoreUnavailable marks failures to reach the record store at all.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

type NotFoundError struct {
	Kind models.RecordKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// Store reads one source record by id and decodes it into dest. A missing
// record is reported as a *NotFoundError.
type Store interface {
	Get(ctx context.Context, kind models.RecordKind, id string, dest interface{}) error
}

var recordTables = map[models.RecordKind]string{
	models.RecordKindContact:     "contacts",
	models.RecordKindContract:    "contracts",
	models.RecordKindOpportunity: "opportunities",
	models.RecordKindQuote:       "quotes",
}

// PostgresStore reads records kept as JSONB documents in a "data" column,
// one table per record kind.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, kind models.RecordKind, id string, dest interface{}) error {
	table, ok := recordTables[kind]
	if !ok {
		return fmt.Errorf("no table for record kind %s", kind)
	}

	var data []byte
	query := fmt.Sprintf("SELECT data FROM %s WHERE id = $1", table)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	if err != nil {
		var opErr *net.OpError
		if errors.Is(err, driver.ErrBadConn) || errors.As(err, &opErr) {
			return fmt.Errorf("query %s %s: %w: %w", kind, id, ErrStoreUnavailable, err)
		}
		return fmt.Errorf("query %s %s: %w", kind, id, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s %s: %w", kind, id, err)
	}
	return nil
}
