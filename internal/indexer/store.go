package indexer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *DB
}

// DB and Tx accept '?' placeholders and rebind them for postgres.
type DB struct {
	raw *sql.DB
}

type Tx struct {
	raw *sql.Tx
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.raw.ExecContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.raw.QueryContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.raw.QueryRowContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (tx *Tx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return tx.raw.ExecContext(ctx, rebindPostgresPlaceholders(query), args...)
}

func (tx *Tx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return tx.raw.QueryRowContext(ctx, rebindPostgresPlaceholders(query), args...)
}

// rebindPostgresPlaceholders numbers every '?' outside string literals.
func rebindPostgresPlaceholders(query string) string {
	var out strings.Builder
	out.Grow(len(query) + 16)

	arg := 1
	inQuote := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			// '' inside a literal is an escaped quote and toggles twice.
			inQuote = !inQuote
			out.WriteByte(ch)
		case ch == '?' && !inQuote:
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(arg))
			arg++
		default:
			out.WriteByte(ch)
		}
	}
	return out.String()
}

func NewStore(dbDSN string) (*Store, error) {
	db, err := sql.Open("pgx", dbDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetConnMaxIdleTime(30 * time.Second)
	db.SetMaxIdleConns(4)
	db.SetMaxOpenConns(16)

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := &Store{db: &DB{raw: db}}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.db.raw.Close()
}

func (s *Store) WithTx(ctx context.Context, fn func(*Tx) error) error {
	raw, err := s.db.raw.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	tx := &Tx{raw: raw}
	defer func() {
		_ = tx.raw.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.raw.Commit()
}

func (s *Store) migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS sync_state (
			id BIGINT PRIMARY KEY CHECK (id = 1),
			last_slot BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS accounts (
			pubkey TEXT PRIMARY KEY,
			account_type INTEGER NOT NULL,
			type_name TEXT NOT NULL,
			version BIGINT NOT NULL,
			records INTEGER NOT NULL,
			lamports BIGINT NOT NULL,
			data_len INTEGER NOT NULL,
			header_json TEXT NOT NULL,
			slot BIGINT NOT NULL,
			updated_at BIGINT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_type ON accounts(account_type);`,
		`CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			signature TEXT NOT NULL,
			log_index INTEGER NOT NULL,
			slot BIGINT NOT NULL,
			block_time BIGINT NOT NULL,
			log_type INTEGER NOT NULL,
			kind TEXT NOT NULL,
			payload_json TEXT NOT NULL,
			UNIQUE (signature, log_index)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind, id);`,
		`CREATE TABLE IF NOT EXISTS tx_errors (
			signature TEXT PRIMARY KEY,
			slot BIGINT NOT NULL,
			block_time BIGINT NOT NULL,
			instruction_index INTEGER NOT NULL,
			code BIGINT NOT NULL,
			name TEXT NOT NULL,
			message TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tx_errors_code ON tx_errors(code);`,
		`CREATE TABLE IF NOT EXISTS tokens (
			token_id BIGINT PRIMARY KEY,
			address TEXT NOT NULL,
			decimals INTEGER NOT NULL,
			base_crncy BOOLEAN NOT NULL,
			slot BIGINT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS log_cursor (
			id BIGINT PRIMARY KEY CHECK (id = 1),
			last_signature TEXT NOT NULL,
			updated_at BIGINT NOT NULL
		);`,
	}
	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Store) UpsertSyncStateTx(ctx context.Context, tx *Tx, slot uint64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sync_state (id, last_slot, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_slot = excluded.last_slot,
			updated_at = excluded.updated_at
	`, int64(slot), time.Now().Unix())
	return err
}

// LastSyncedSlot returns ErrNotFound before the first sync.
func (s *Store) LastSyncedSlot(ctx context.Context) (uint64, error) {
	var slot int64
	err := s.db.QueryRowContext(ctx, `SELECT last_slot FROM sync_state WHERE id = 1`).Scan(&slot)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return uint64(slot), nil
}

func (s *Store) UpsertAccountTx(ctx context.Context, tx *Tx, pubkey solana.PublicKey, slot uint64, lamports uint64, dataLen int, snapshot *AccountSnapshot) error {
	headerJSON, err := json.Marshal(snapshot.Header)
	if err != nil {
		return fmt.Errorf("marshal %s header: %w", snapshot.Type, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (
			pubkey, account_type, type_name, version, records, lamports,
			data_len, header_json, slot, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(pubkey) DO UPDATE SET
			account_type = excluded.account_type,
			type_name = excluded.type_name,
			version = excluded.version,
			records = excluded.records,
			lamports = excluded.lamports,
			data_len = excluded.data_len,
			header_json = excluded.header_json,
			slot = excluded.slot,
			updated_at = excluded.updated_at
	`,
		pubkey.String(),
		int64(snapshot.Type.U32()),
		snapshot.Type.Name(),
		int64(snapshot.Version),
		snapshot.Records,
		int64(lamports),
		dataLen,
		string(headerJSON),
		int64(slot),
		time.Now().Unix(),
	)
	return err
}

func (s *Store) UpsertTokenTx(ctx context.Context, tx *Tx, token TokenRecord) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO tokens (token_id, address, decimals, base_crncy, slot)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(token_id) DO UPDATE SET
			address = excluded.address,
			decimals = excluded.decimals,
			base_crncy = excluded.base_crncy,
			slot = excluded.slot
	`,
		int64(token.TokenID),
		token.Address,
		int(token.Decimals),
		token.BaseCrncy,
		int64(token.Slot),
	)
	return err
}

// InsertEventsTx stores decoded log records. Replays of the same
// transaction are ignored.
func (s *Store) InsertEventsTx(ctx context.Context, tx *Tx, events []ProgramEvent) (int, error) {
	inserted := 0
	for _, event := range events {
		payload, err := json.Marshal(event.Report)
		if err != nil {
			return inserted, fmt.Errorf("marshal %s event: %w", event.Kind, err)
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO events (signature, log_index, slot, block_time, log_type, kind, payload_json)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(signature, log_index) DO NOTHING
		`,
			event.Signature,
			event.LogIndex,
			int64(event.Slot),
			event.BlockTime,
			int(event.LogType),
			event.Kind,
			string(payload),
		)
		if err != nil {
			return inserted, err
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}
	return inserted, nil
}

func (s *Store) UpsertTxErrorTx(ctx context.Context, tx *Tx, failure TxFailure) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO tx_errors (signature, slot, block_time, instruction_index, code, name, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(signature) DO UPDATE SET
			slot = excluded.slot,
			block_time = excluded.block_time,
			instruction_index = excluded.instruction_index,
			code = excluded.code,
			name = excluded.name,
			message = excluded.message
	`,
		failure.Signature,
		int64(failure.Slot),
		failure.BlockTime,
		failure.InstructionIndex,
		int64(failure.Code),
		failure.Name,
		failure.Message,
	)
	return err
}

// LogCursor is the newest signature already ingested by the backfill.
func (s *Store) LogCursor(ctx context.Context) (string, error) {
	var sig string
	err := s.db.QueryRowContext(ctx, `SELECT last_signature FROM log_cursor WHERE id = 1`).Scan(&sig)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return sig, err
}

func (s *Store) SetLogCursorTx(ctx context.Context, tx *Tx, signature string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO log_cursor (id, last_signature, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_signature = excluded.last_signature,
			updated_at = excluded.updated_at
	`, signature, time.Now().Unix())
	return err
}
