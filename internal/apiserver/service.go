package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
	"github.com/deriverse/drv-smart-contract-common/internal/dex"
	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/indexer"
	"github.com/deriverse/drv-smart-contract-common/internal/instruction"
	"github.com/deriverse/drv-smart-contract-common/internal/models"
)

// Store is the read side of the indexer database.
type Store interface {
	LastSyncedSlot(ctx context.Context) (uint64, error)
	ListAccounts(ctx context.Context, filter indexer.AccountFilter) ([]indexer.AccountRecord, int, int, error)
	GetAccount(ctx context.Context, pubkey string) (indexer.AccountRecord, error)
	ListEvents(ctx context.Context, filter indexer.EventFilter) ([]indexer.EventRecord, int, int, error)
	LatestEventID(ctx context.Context) (int64, error)
	ListTxErrors(ctx context.Context, filter indexer.TxErrorFilter) ([]indexer.TxErrorRecord, int, int, error)
	ListTokens(ctx context.Context) ([]indexer.TokenRecord, error)
	Close() error
}

type Service struct {
	cfg              config.APIServerConfig
	logger           *slog.Logger
	store            Store
	allowAllOrigins  bool
	allowedOriginSet map[string]struct{}

	// wsReadTimeout drops a websocket client that answers neither a
	// message nor a ping for that long; pings go out every wsPingInterval.
	wsReadTimeout  time.Duration
	wsPingInterval time.Duration
}

func New(cfg config.APIServerConfig, logger *slog.Logger) (*Service, error) {
	store, err := indexer.NewStore(cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return newService(cfg, logger, store), nil
}

func newService(cfg config.APIServerConfig, logger *slog.Logger, store Store) *Service {
	allowAll := false
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		trimmed := strings.TrimSpace(origin)
		switch trimmed {
		case "":
		case "*":
			allowAll = true
		default:
			allowed[trimmed] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		allowAll = true
	}
	return &Service{
		cfg:              cfg,
		logger:           logger,
		store:            store,
		allowAllOrigins:  allowAll,
		allowedOriginSet: allowed,
		wsReadTimeout:    websocketReadTimeout,
		wsPingInterval:   websocketPingInterval,
	}
}

func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/accounts", s.handleAccounts)
	mux.HandleFunc("/v1/accounts/", s.handleAccount)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/tokens", s.handleTokens)
	mux.HandleFunc("/v1/errors", s.handleErrorCatalog)
	mux.HandleFunc("/v1/errors/", s.handleErrorCode)
	mux.HandleFunc("/v1/instructions", s.handleInstructions)
	mux.HandleFunc("/ws", s.handleWebsocket)
	return s.withCORS(mux)
}

func (s *Service) Run(ctx context.Context) error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("failed to close store", "err", err)
		}
	}()

	server := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
			return
		}
		errCh <- err
	}()

	s.logger.Info("api-server started",
		"listen_addr", s.cfg.ListenAddr,
		"db_driver", "postgres",
		"allowed_origins", strings.Join(s.cfg.AllowedOrigins, ","),
	)

	select {
	case <-ctx.Done():
		s.logger.Info("api-server stopping")
		if err := server.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown api-server: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	}
}

type listResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type healthResponse struct {
	OK            bool    `json:"ok"`
	LastSlot      *uint64 `json:"last_slot,omitempty"`
	Program       string  `json:"program,omitempty"`
	Holder        string  `json:"holder,omitempty"`
	DrvsAuthority string  `json:"drvs_authority,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	resp := healthResponse{OK: true}
	if !s.cfg.ProgramID.IsZero() {
		resp.Program = s.cfg.ProgramID.String()
		if holder, _, err := dex.DeriveHolderPDA(s.cfg.ProgramID); err == nil {
			resp.Holder = holder.String()
		}
		if authority, _, err := dex.DeriveDrvsAuthorityPDA(s.cfg.ProgramID); err == nil {
			resp.DrvsAuthority = authority.String()
		}
	}
	slot, err := s.store.LastSyncedSlot(r.Context())
	switch {
	case err == nil:
		resp.LastSlot = &slot
	case errors.Is(err, indexer.ErrNotFound):
	default:
		s.logger.Error("read sync state failed", "err", err)
		resp.OK = false
		s.respondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Service) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	accountType, err := parseAccountType(r.URL.Query().Get("type"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, offset, err := parsePage(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, limit, offset, err := s.store.ListAccounts(r.Context(), indexer.AccountFilter{
		AccountType: accountType,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		s.logger.Error("list accounts failed", "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	s.respondJSON(w, http.StatusOK, listResponse[indexer.AccountRecord]{Items: items, Limit: limit, Offset: offset})
}

func (s *Service) handleAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	pubkey := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/v1/accounts/"))
	if pubkey == "" || strings.Contains(pubkey, "/") {
		s.respondError(w, http.StatusNotFound, "not found")
		return
	}
	item, err := s.store.GetAccount(r.Context(), pubkey)
	if errors.Is(err, indexer.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "account not indexed")
		return
	}
	if err != nil {
		s.logger.Error("get account failed", "pubkey", pubkey, "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to get account")
		return
	}
	s.respondJSON(w, http.StatusOK, item)
}

func (s *Service) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	limit, offset, err := parsePage(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	afterID, err := parseOptionalInt64(r, "after_id", 0)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, limit, offset, err := s.store.ListEvents(r.Context(), indexer.EventFilter{
		Kind:      strings.TrimSpace(r.URL.Query().Get("kind")),
		Signature: strings.TrimSpace(r.URL.Query().Get("signature")),
		AfterID:   afterID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		s.logger.Error("list events failed", "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	s.respondJSON(w, http.StatusOK, listResponse[eventView]{
		Items:  scaleEvents(items, s.tokenDecimals(r.Context())),
		Limit:  limit,
		Offset: offset,
	})
}

func (s *Service) handleTokens(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	items, err := s.store.ListTokens(r.Context())
	if err != nil {
		s.logger.Error("list tokens failed", "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to list tokens")
		return
	}
	if items == nil {
		items = []indexer.TokenRecord{}
	}
	s.respondJSON(w, http.StatusOK, listResponse[indexer.TokenRecord]{Items: items, Limit: len(items)})
}

func (s *Service) handleErrorCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	catalog := drverr.Catalog()
	s.respondJSON(w, http.StatusOK, listResponse[drverr.CatalogEntry]{Items: catalog, Limit: len(catalog)})
}

type errorCodeResponse struct {
	drverr.CatalogEntry
	RecentFailures []indexer.TxErrorRecord `json:"recent_failures"`
}

// handleErrorCode accepts a decimal code, a 0x-prefixed hex code or a kind
// name.
func (s *Service) handleErrorCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	raw := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/v1/errors/"))
	entry, ok := lookupCatalogEntry(raw)
	if !ok {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("unknown error code %q", raw))
		return
	}
	limit, offset, err := parsePage(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	code := entry.Code
	failures, _, _, err := s.store.ListTxErrors(r.Context(), indexer.TxErrorFilter{Code: &code, Limit: limit, Offset: offset})
	if err != nil {
		s.logger.Error("list tx errors failed", "code", code, "err", err)
		s.respondError(w, http.StatusInternalServerError, "failed to list failed transactions")
		return
	}
	s.respondJSON(w, http.StatusOK, errorCodeResponse{CatalogEntry: entry, RecentFailures: failures})
}

func lookupCatalogEntry(raw string) (drverr.CatalogEntry, bool) {
	if raw == "" {
		return drverr.CatalogEntry{}, false
	}
	if code, err := strconv.ParseUint(raw, 0, 32); err == nil {
		kind, ok := drverr.LookupCode(uint32(code))
		if !ok {
			return drverr.CatalogEntry{}, false
		}
		raw = kind.Name()
	}
	for _, entry := range drverr.Catalog() {
		if strings.EqualFold(entry.Name, raw) {
			return entry, true
		}
	}
	return drverr.CatalogEntry{}, false
}

type instructionResponse struct {
	Opcode      uint8  `json:"opcode"`
	Name        string `json:"name"`
	MinAccounts int    `json:"min_accounts"`
	Retired     bool   `json:"retired,omitempty"`
}

func (s *Service) handleInstructions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	all := instruction.All()
	items := make([]instructionResponse, 0, len(all))
	for _, meta := range all {
		items = append(items, instructionResponse{Opcode: meta.Number, Name: meta.Name, MinAccounts: meta.MinAccounts, Retired: instruction.IsRetired(meta.Number)})
	}
	s.respondJSON(w, http.StatusOK, listResponse[instructionResponse]{Items: items, Limit: len(items)})
}

func (s *Service) isOriginAllowed(origin string) bool {
	if origin == "" || s.allowAllOrigins {
		return true
	}
	_, ok := s.allowedOriginSet[origin]
	return ok
}

func (s *Service) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin != "" && s.isOriginAllowed(origin) {
			if s.allowAllOrigins {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// parseAccountType accepts a variant name or a numeric tag.
func parseAccountType(raw string) (*uint32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, ok := models.AccountTypeByName(raw); ok {
		tag := t.U32()
		return &tag, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid type %q", raw)
	}
	t, err := models.ParseAccountType(uint32(value))
	if err != nil {
		return nil, fmt.Errorf("invalid type %q: %w", raw, err)
	}
	tag := t.U32()
	return &tag, nil
}

func parsePage(r *http.Request) (int, int, error) {
	limit, err := parseOptionalInt(r, "limit", 0)
	if err != nil {
		return 0, 0, err
	}
	offset, err := parseOptionalInt(r, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func parseOptionalInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func parseOptionalInt64(r *http.Request, key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func (s *Service) respondMethodNotAllowed(w http.ResponseWriter) {
	s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func (s *Service) respondError(w http.ResponseWriter, code int, message string) {
	s.respondJSON(w, code, errorResponse{Error: message})
}

func (s *Service) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write JSON response", "err", err)
	}
}
