package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// AccountHandler receives the new raw data of a watched account on every
// change notification.
type AccountHandler func(address solana.PublicKey, data []byte) error

// Watcher maintains a websocket connection and accountSubscribe
// subscriptions, used to follow launch and intent state accounts live.
type Watcher struct {
	url    string
	conn   *websocket.Conn
	logger *logrus.Logger

	mu            sync.RWMutex
	subscriptions map[int]*accountSubscription
	nextID        int

	ctx            context.Context
	cancel         context.CancelFunc
	reconnectDelay time.Duration
}

type accountSubscription struct {
	id       int // our request id
	serverID int // id assigned by the node, used in notifications
	address  solana.PublicKey
	handler  AccountHandler
	active   bool
}

type wsMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *int            `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *wsError        `json:"error,omitempty"`
}

type wsError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type accountNotification struct {
	Subscription int `json:"subscription"`
	Result       struct {
		Context struct {
			Slot uint64 `json:"slot"`
		} `json:"context"`
		Value struct {
			Data     []string `json:"data"`
			Lamports uint64   `json:"lamports"`
			Owner    string   `json:"owner"`
		} `json:"value"`
	} `json:"result"`
}

// NewWatcher creates a watcher for the given websocket endpoint.
func NewWatcher(url string, logger *logrus.Logger) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		url:            url,
		logger:         logger,
		subscriptions:  make(map[int]*accountSubscription),
		nextID:         1,
		ctx:            ctx,
		cancel:         cancel,
		reconnectDelay: 5 * time.Second,
	}
}

// Connect establishes the websocket connection and starts the read and ping
// loops. Call once; the loops survive reconnects.
func (w *Watcher) Connect() error {
	if err := w.dial(); err != nil {
		return err
	}

	go w.readLoop()
	go w.pingLoop()

	return nil
}

func (w *Watcher) dial() error {
	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(w.url, nil)
	if err != nil {
		return networkErr("websocket dial", err)
	}

	conn.SetReadLimit(1024 * 1024)

	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()

	w.logger.WithField("url", w.url).Info("websocket connected")

	return nil
}

// Close shuts down the connection and all subscriptions.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		err := w.conn.Close()
		w.conn = nil
		return err
	}
	return nil
}

// WatchAccount subscribes to changes of a single account. The handler runs on
// every data notification until Close.
func (w *Watcher) WatchAccount(address solana.PublicKey, handler AccountHandler) (int, error) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subscriptions[id] = &accountSubscription{
		id:      id,
		address: address,
		handler: handler,
	}
	w.mu.Unlock()

	msg := wsMessage{
		JSONRPC: "2.0",
		ID:      &id,
		Method:  "accountSubscribe",
	}
	params, err := json.Marshal([]interface{}{
		address.String(),
		map[string]interface{}{
			"encoding":   "base64",
			"commitment": "confirmed",
		},
	})
	if err != nil {
		return 0, fmt.Errorf("marshal accountSubscribe params: %w", err)
	}
	msg.Params = params

	if err := w.send(msg); err != nil {
		w.mu.Lock()
		delete(w.subscriptions, id)
		w.mu.Unlock()
		return 0, err
	}

	w.logger.WithFields(logrus.Fields{
		"account": address.String(),
		"id":      id,
	}).Debug("accountSubscribe sent")

	return id, nil
}

// Unwatch cancels a subscription created by WatchAccount.
func (w *Watcher) Unwatch(id int) error {
	w.mu.Lock()
	_, exists := w.subscriptions[id]
	delete(w.subscriptions, id)
	w.mu.Unlock()

	if !exists {
		return fmt.Errorf("subscription %d not found", id)
	}

	params, _ := json.Marshal([]interface{}{id})
	return w.send(wsMessage{
		JSONRPC: "2.0",
		ID:      &id,
		Method:  "accountUnsubscribe",
		Params:  params,
	})
}

func (w *Watcher) send(msg wsMessage) error {
	w.mu.RLock()
	conn := w.conn
	w.mu.RUnlock()

	if conn == nil {
		return networkErr("websocket send", fmt.Errorf("not connected"))
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal websocket message: %w", err)
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (w *Watcher) readLoop() {
	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		w.mu.RLock()
		conn := w.conn
		w.mu.RUnlock()

		if conn == nil {
			if err := w.reconnect(); err != nil {
				w.logger.WithError(err).Warn("websocket reconnect failed")
				time.Sleep(w.reconnectDelay)
			}
			continue
		}

		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				w.logger.WithError(err).Warn("websocket read error")
			}
			w.mu.Lock()
			w.conn = nil
			w.mu.Unlock()
			continue
		}

		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			w.logger.WithError(err).Warn("bad websocket message")
			continue
		}
		w.handleMessage(msg)
	}
}

func (w *Watcher) handleMessage(msg wsMessage) {
	// Subscription confirmation: request id echoed with the server-side id.
	if msg.ID != nil && msg.Result != nil {
		var serverID int
		if err := json.Unmarshal(msg.Result, &serverID); err != nil {
			return
		}
		w.mu.Lock()
		if sub, ok := w.subscriptions[*msg.ID]; ok {
			sub.serverID = serverID
			sub.active = true
		}
		w.mu.Unlock()
		return
	}

	if msg.Error != nil {
		w.logger.WithFields(logrus.Fields{
			"code":    msg.Error.Code,
			"message": msg.Error.Message,
		}).Warn("websocket error response")
		return
	}

	if msg.Method != "accountNotification" {
		return
	}

	var notif accountNotification
	if err := json.Unmarshal(msg.Params, &notif); err != nil {
		w.logger.WithError(err).Warn("bad account notification")
		return
	}

	if len(notif.Result.Value.Data) == 0 {
		return
	}
	raw, err := base64.StdEncoding.DecodeString(notif.Result.Value.Data[0])
	if err != nil {
		w.logger.WithError(err).Warn("bad account data encoding")
		return
	}

	w.mu.RLock()
	var target *accountSubscription
	for _, sub := range w.subscriptions {
		if sub.active && sub.serverID == notif.Subscription {
			target = sub
			break
		}
	}
	w.mu.RUnlock()

	if target == nil {
		return
	}
	go func(sub *accountSubscription) {
		if err := sub.handler(sub.address, raw); err != nil {
			w.logger.WithError(err).WithField("account", sub.address.String()).
				Warn("account handler error")
		}
	}(target)
}

// reconnect re-dials on the existing loops; it must never start new ones.
func (w *Watcher) reconnect() error {
	if err := w.dial(); err != nil {
		return err
	}

	w.mu.Lock()
	subs := make([]*accountSubscription, 0, len(w.subscriptions))
	for _, sub := range w.subscriptions {
		sub.active = false
		subs = append(subs, sub)
	}
	w.mu.Unlock()

	for _, sub := range subs {
		msg := wsMessage{
			JSONRPC: "2.0",
			ID:      &sub.id,
			Method:  "accountSubscribe",
		}
		params, _ := json.Marshal([]interface{}{
			sub.address.String(),
			map[string]interface{}{
				"encoding":   "base64",
				"commitment": "confirmed",
			},
		})
		msg.Params = params
		if err := w.send(msg); err != nil {
			w.logger.WithError(err).WithField("account", sub.address.String()).
				Warn("resubscribe failed")
		}
	}
	return nil
}

func (w *Watcher) pingLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.RLock()
			conn := w.conn
			w.mu.RUnlock()

			if conn != nil {
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					w.logger.WithError(err).Debug("ping failed")
				}
			}
		}
	}
}
