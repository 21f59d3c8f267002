package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gorilla/websocket"
)

const (
	websocketReadLimitBytes = 4 << 20
	websocketWriteTimeout   = 10 * time.Second
	websocketReadTimeout    = 90 * time.Second
)

// LogNotification is one logsSubscribe push.
type LogNotification struct {
	Signature string
	Slot      uint64
	Err       json.RawMessage
	Logs      []string
}

// Failed reports whether the transaction carried an error.
func (n LogNotification) Failed() bool {
	return len(n.Err) > 0 && string(n.Err) != "null"
}

type LogHandler func(ctx context.Context, n LogNotification) error

// LogStream follows the program's logs over the RPC pubsub endpoint and
// reconnects until its context ends.
type LogStream struct {
	url        string
	programID  solana.PublicKey
	commitment rpc.CommitmentType
	reconnect  time.Duration
	logger     *slog.Logger
	handle     LogHandler
}

func NewLogStream(url string, programID solana.PublicKey, commitment rpc.CommitmentType, reconnect time.Duration, logger *slog.Logger, handle LogHandler) *LogStream {
	return &LogStream{
		url:        url,
		programID:  programID,
		commitment: commitment,
		reconnect:  reconnect,
		logger:     logger,
		handle:     handle,
	}
}

func (s *LogStream) Run(ctx context.Context) {
	for {
		err := s.runOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("log stream disconnected", "err", err, "retry_in", s.reconnect.String())
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.reconnect):
		}
	}
}

type pubsubRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type pubsubMessage struct {
	ID     *int            `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Method string `json:"method"`
	Params struct {
		Result struct {
			Context struct {
				Slot uint64 `json:"slot"`
			} `json:"context"`
			Value struct {
				Signature string          `json:"signature"`
				Err       json.RawMessage `json:"err"`
				Logs      []string        `json:"logs"`
			} `json:"value"`
		} `json:"result"`
	} `json:"params"`
}

func (s *LogStream) subscribeRequest() pubsubRequest {
	return pubsubRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "logsSubscribe",
		Params: []any{
			map[string]any{"mentions": []string{s.programID.String()}},
			map[string]any{"commitment": string(s.commitment)},
		},
	}
}

func (s *LogStream) runOnce(ctx context.Context) error {
	conn, _, err := dialWebsocket(ctx, s.url)
	if err != nil {
		return fmt.Errorf("dial %s: %w", s.url, err)
	}
	defer conn.Close()
	stop := closeConnOnContextDone(ctx, conn)
	defer stop()

	if err := writeWebsocketJSON(conn, s.subscribeRequest()); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	for {
		if err := conn.SetReadDeadline(time.Now().Add(websocketReadTimeout)); err != nil {
			return err
		}
		var msg pubsubMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}
		switch {
		case msg.Error != nil:
			return fmt.Errorf("pubsub error %d: %s", msg.Error.Code, msg.Error.Message)
		case msg.ID != nil:
			s.logger.Info("log stream subscribed", "program", s.programID.String(), "subscription", string(msg.Result))
		case msg.Method == "logsNotification":
			value := msg.Params.Result.Value
			n := LogNotification{
				Signature: value.Signature,
				Slot:      msg.Params.Result.Context.Slot,
				Err:       value.Err,
				Logs:      value.Logs,
			}
			if err := s.handle(ctx, n); err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				s.logger.Warn("log notification failed", "signature", n.Signature, "err", err)
			}
		}
	}
}

func dialWebsocket(ctx context.Context, endpoint string) (*websocket.Conn, *http.Response, error) {
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 10 * time.Second,
	}
	conn, resp, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, resp, err
	}
	conn.SetReadLimit(websocketReadLimitBytes)
	return conn, resp, nil
}

func writeWebsocketJSON(conn *websocket.Conn, value any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(websocketWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(value)
}

func closeConnOnContextDone(ctx context.Context, conn *websocket.Conn) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	return func() {
		close(done)
	}
}
