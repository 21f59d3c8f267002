package apiserver

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/deriverse/drv-smart-contract-common/internal/indexer"
)

const (
	eventsChannel       = "events"
	eventsChannelPrefix = "events."
	websocketBatchLimit = 200

	websocketReadTimeout  = 90 * time.Second
	websocketPingInterval = 30 * time.Second
	websocketWriteTimeout = 10 * time.Second
)

type websocketSubscribeRequest struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
}

type websocketEnvelope struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	TS      int64  `json:"ts"`
}

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// handleWebsocket pushes newly indexed events. A client subscribes to
// "events" for everything or "events.<kind>" for one record kind; only
// events stored after the connection opened are delivered.
func (s *Service) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondMethodNotAllowed(w)
		return
	}
	upgrader := websocketUpgrader
	upgrader.CheckOrigin = func(req *http.Request) bool {
		origin := strings.TrimSpace(req.Header.Get("Origin"))
		return s.isOriginAllowed(origin)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	cursor, err := s.store.LatestEventID(ctx)
	if err != nil {
		s.logger.Error("read latest event id failed", "err", err)
		_ = writeWebsocketJSON(conn, websocketEnvelope{Type: "error", Error: "failed to read event cursor", TS: time.Now().Unix()})
		return
	}

	subs := newSubscriptionSet()
	readErrCh := make(chan error, 1)
	go s.websocketReadLoop(ctx, conn, subs, readErrCh)

	interval := s.cfg.EventPollInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	pinger := time.NewTicker(s.wsPingInterval)
	defer pinger.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-readErrCh:
			if err != nil {
				s.logger.Debug("websocket read loop ended", "err", err)
			}
			return
		case <-pinger.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(websocketWriteTimeout)); err != nil {
				s.logger.Debug("websocket ping failed", "err", err)
				return
			}
		case <-ticker.C:
			channels := subs.List()
			if len(channels) == 0 {
				continue
			}
			events, _, _, err := s.store.ListEvents(ctx, indexer.EventFilter{AfterID: cursor, Limit: websocketBatchLimit})
			if err != nil {
				_ = writeWebsocketJSON(conn, websocketEnvelope{Type: "error", Error: "failed to fetch events", TS: time.Now().Unix()})
				continue
			}
			if len(events) == 0 {
				continue
			}
			for _, event := range scaleEvents(events, s.tokenDecimals(ctx)) {
				cursor = max(cursor, event.ID)
				for _, channel := range channels {
					if !channelMatches(channel, event.Kind) {
						continue
					}
					if err := writeWebsocketJSON(conn, websocketEnvelope{Type: "event", Channel: channel, Data: event, TS: time.Now().Unix()}); err != nil {
						return
					}
				}
			}
		}
	}
}

func (s *Service) websocketReadLoop(ctx context.Context, conn *websocket.Conn, subs *subscriptionSet, readErrCh chan<- error) {
	conn.SetReadLimit(64 * 1024)
	extend := func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.wsReadTimeout))
	}
	if err := extend(""); err != nil {
		readErrCh <- err
		return
	}
	conn.SetPongHandler(extend)
	for {
		select {
		case <-ctx.Done():
			readErrCh <- nil
			return
		default:
		}
		var message websocketSubscribeRequest
		if err := conn.ReadJSON(&message); err != nil {
			readErrCh <- err
			return
		}
		if err := extend(""); err != nil {
			readErrCh <- err
			return
		}
		message.Type = strings.ToLower(strings.TrimSpace(message.Type))
		message.Channel = strings.TrimSpace(message.Channel)
		if message.Channel == "" {
			continue
		}
		if !validChannel(message.Channel) {
			continue
		}
		switch message.Type {
		case "subscribe":
			subs.Add(message.Channel)
		case "unsubscribe":
			subs.Remove(message.Channel)
		}
	}
}

func validChannel(channel string) bool {
	if channel == eventsChannel {
		return true
	}
	return strings.HasPrefix(channel, eventsChannelPrefix) && len(channel) > len(eventsChannelPrefix)
}

func channelMatches(channel, kind string) bool {
	if channel == eventsChannel {
		return true
	}
	return strings.TrimPrefix(channel, eventsChannelPrefix) == kind
}

func writeWebsocketJSON(conn *websocket.Conn, payload websocketEnvelope) error {
	if err := conn.SetWriteDeadline(time.Now().Add(websocketWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(payload)
}

type subscriptionSet struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

func newSubscriptionSet() *subscriptionSet {
	return &subscriptionSet{items: map[string]struct{}{}}
}

func (s *subscriptionSet) Add(channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[channel] = struct{}{}
}

func (s *subscriptionSet) Remove(channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, channel)
}

func (s *subscriptionSet) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.items))
	for channel := range s.items {
		out = append(out, channel)
	}
	return out
}
