package indexer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

type AccountFilter struct {
	AccountType *uint32
	Limit       int
	Offset      int
}

type AccountRecord struct {
	Pubkey      string          `json:"pubkey"`
	AccountType uint32          `json:"account_type"`
	TypeName    string          `json:"type_name"`
	Version     uint32          `json:"version"`
	Records     int             `json:"records"`
	Lamports    uint64          `json:"lamports"`
	DataLen     int             `json:"data_len"`
	Header      json.RawMessage `json:"header"`
	Slot        uint64          `json:"slot"`
	UpdatedAt   int64           `json:"updated_at"`
}

type EventFilter struct {
	Kind      string
	Signature string
	// AfterID pages forward from a known event, for push consumers.
	AfterID int64
	Limit   int
	Offset  int
}

type EventRecord struct {
	ID        int64           `json:"id"`
	Signature string          `json:"signature"`
	LogIndex  int             `json:"log_index"`
	Slot      uint64          `json:"slot"`
	BlockTime int64           `json:"block_time"`
	LogType   uint8           `json:"log_type"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
}

type TxErrorFilter struct {
	Code   *uint32
	Limit  int
	Offset int
}

type TxErrorRecord struct {
	Signature        string `json:"signature"`
	Slot             uint64 `json:"slot"`
	BlockTime        int64  `json:"block_time"`
	InstructionIndex int    `json:"instruction_index"`
	Code             uint32 `json:"code"`
	Name             string `json:"name"`
	Message          string `json:"message"`
}

type TokenRecord struct {
	TokenID   uint32 `json:"token_id"`
	Address   string `json:"address"`
	Decimals  uint32 `json:"decimals"`
	BaseCrncy bool   `json:"base_crncy"`
	Slot      uint64 `json:"slot"`
}

const accountColumns = `pubkey, account_type, type_name, version, records, lamports, data_len, header_json, slot, updated_at`

func scanAccount(scan func(dest ...any) error) (AccountRecord, error) {
	var (
		item        AccountRecord
		accountType int64
		version     int64
		lamports    int64
		slot        int64
		header      string
	)
	if err := scan(
		&item.Pubkey,
		&accountType,
		&item.TypeName,
		&version,
		&item.Records,
		&lamports,
		&item.DataLen,
		&header,
		&slot,
		&item.UpdatedAt,
	); err != nil {
		return AccountRecord{}, err
	}
	item.AccountType = uint32(accountType)
	item.Version = uint32(version)
	item.Lamports = uint64(lamports)
	item.Slot = uint64(slot)
	item.Header = json.RawMessage(header)
	return item, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter AccountFilter) ([]AccountRecord, int, int, error) {
	limit, offset := normalizePagination(filter.Limit, filter.Offset)
	clauses := []string{"1 = 1"}
	args := make([]any, 0, 3)
	if filter.AccountType != nil {
		clauses = append(clauses, "account_type = ?")
		args = append(args, int64(*filter.AccountType))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE %s
		ORDER BY account_type ASC, pubkey ASC
		LIMIT ? OFFSET ?
	`, accountColumns, strings.Join(clauses, " AND "))
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	items := make([]AccountRecord, 0, limit)
	for rows.Next() {
		item, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, 0, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}
	return items, limit, offset, nil
}

func (s *Store) GetAccount(ctx context.Context, pubkey string) (AccountRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE pubkey = ?`, pubkey)
	item, err := scanAccount(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return AccountRecord{}, ErrNotFound
	}
	return item, err
}

func (s *Store) ListEvents(ctx context.Context, filter EventFilter) ([]EventRecord, int, int, error) {
	limit, offset := normalizePagination(filter.Limit, filter.Offset)
	clauses := []string{"1 = 1"}
	args := make([]any, 0, 5)
	order := "id DESC"

	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, filter.Kind)
	}
	if filter.Signature != "" {
		clauses = append(clauses, "signature = ?")
		args = append(args, filter.Signature)
	}
	if filter.AfterID > 0 {
		clauses = append(clauses, "id > ?")
		args = append(args, filter.AfterID)
		order = "id ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, signature, log_index, slot, block_time, log_type, kind, payload_json
		FROM events
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, strings.Join(clauses, " AND "), order)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	items := make([]EventRecord, 0, limit)
	for rows.Next() {
		var (
			item    EventRecord
			slot    int64
			logType int
			payload string
		)
		if err := rows.Scan(&item.ID, &item.Signature, &item.LogIndex, &slot, &item.BlockTime, &logType, &item.Kind, &payload); err != nil {
			return nil, 0, 0, err
		}
		item.Slot = uint64(slot)
		item.LogType = uint8(logType)
		item.Payload = json.RawMessage(payload)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}
	return items, limit, offset, nil
}

// LatestEventID is 0 when no event is stored.
func (s *Store) LatestEventID(ctx context.Context) (int64, error) {
	var id sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(id) FROM events`).Scan(&id); err != nil {
		return 0, err
	}
	return id.Int64, nil
}

func (s *Store) ListTxErrors(ctx context.Context, filter TxErrorFilter) ([]TxErrorRecord, int, int, error) {
	limit, offset := normalizePagination(filter.Limit, filter.Offset)
	clauses := []string{"1 = 1"}
	args := make([]any, 0, 3)
	if filter.Code != nil {
		clauses = append(clauses, "code = ?")
		args = append(args, int64(*filter.Code))
	}

	query := fmt.Sprintf(`
		SELECT signature, slot, block_time, instruction_index, code, name, message
		FROM tx_errors
		WHERE %s
		ORDER BY slot DESC, signature ASC
		LIMIT ? OFFSET ?
	`, strings.Join(clauses, " AND "))
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	items := make([]TxErrorRecord, 0, limit)
	for rows.Next() {
		var (
			item TxErrorRecord
			slot int64
			code int64
		)
		if err := rows.Scan(&item.Signature, &slot, &item.BlockTime, &item.InstructionIndex, &code, &item.Name, &item.Message); err != nil {
			return nil, 0, 0, err
		}
		item.Slot = uint64(slot)
		item.Code = uint32(code)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}
	return items, limit, offset, nil
}

func (s *Store) ListTokens(ctx context.Context) ([]TokenRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT token_id, address, decimals, base_crncy, slot FROM tokens ORDER BY token_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TokenRecord
	for rows.Next() {
		var (
			item     TokenRecord
			tokenID  int64
			decimals int
			slot     int64
		)
		if err := rows.Scan(&tokenID, &item.Address, &decimals, &item.BaseCrncy, &slot); err != nil {
			return nil, err
		}
		item.TokenID = uint32(tokenID)
		item.Decimals = uint32(decimals)
		item.Slot = uint64(slot)
		items = append(items, item)
	}
	return items, rows.Err()
}

func normalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
