package wsserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	escrowtypes "github.com/bridgelabs/bridgechain/x/escrow/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// Client represents a WebSocket client connection
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	topics map[string]bool
	mu     sync.RWMutex
}

// Hub manages all client connections and topic subscriptions
type Hub struct {
	clients     map[*Client]bool
	topics      map[string]map[*Client]bool
	broadcast   chan *EscrowEvent
	register    chan *Client
	unregister  chan *Client
	subscribe   chan *Subscription
	unsubscribe chan *Subscription
	mu          sync.RWMutex
	grpcConn    *grpc.ClientConn
	queryClient escrowtypes.QueryClient
}

// Subscription represents a client subscribing to a topic
type Subscription struct {
	client *Client
	topic  string
}

// EscrowEvent is an escrow module event fanned out to subscribers
type EscrowEvent struct {
	Topic      string            `json:"topic"`
	Timestamp  time.Time         `json:"timestamp"`
	Event      string            `json:"event"`
	Attributes map[string]string `json:"attributes"`
}

// ClientMessage from client
type ClientMessage struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
}

// CometBFTEventResponse represents the structure of a CometBFT WebSocket event
type CometBFTEventResponse struct {
	ID      int    `json:"id"`
	JSONRPC string `json:"jsonrpc"`
	Result  struct {
		Query  string              `json:"query"`
		Events map[string][]string `json:"events"`
	} `json:"result"`
}

func newHub(grpcConn *grpc.ClientConn) *Hub {
	var queryClient escrowtypes.QueryClient
	if grpcConn != nil {
		queryClient = escrowtypes.NewQueryClient(grpcConn)
	}
	return &Hub{
		clients:     make(map[*Client]bool),
		topics:      make(map[string]map[*Client]bool),
		broadcast:   make(chan *EscrowEvent, 256),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		subscribe:   make(chan *Subscription),
		unsubscribe: make(chan *Subscription),
		grpcConn:    grpcConn,
		queryClient: queryClient,
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WS-Server] Client registered. Total clients: %d", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.mu.Lock()
				delete(h.clients, client)

				client.mu.RLock()
				for topic := range client.topics {
					if clients, exists := h.topics[topic]; exists {
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.topics, topic)
						}
					}
				}
				client.mu.RUnlock()

				close(client.send)
				h.mu.Unlock()
				log.Printf("[WS-Server] Client unregistered. Total clients: %d", len(h.clients))
			}

		case sub := <-h.subscribe:
			h.mu.Lock()
			if h.topics[sub.topic] == nil {
				h.topics[sub.topic] = make(map[*Client]bool)
			}
			h.topics[sub.topic][sub.client] = true
			h.mu.Unlock()

			sub.client.mu.Lock()
			sub.client.topics[sub.topic] = true
			sub.client.mu.Unlock()

			log.Printf("[WS-Server] Client subscribed to %s. Subscribers: %d", sub.topic, len(h.topics[sub.topic]))

			// new lock observers get the latest recorded lock up front
			if sub.topic == TopicLock {
				go h.sendLockSnapshot(sub.client)
			}

		case sub := <-h.unsubscribe:
			h.mu.Lock()
			if clients, exists := h.topics[sub.topic]; exists {
				delete(clients, sub.client)
				if len(clients) == 0 {
					delete(h.topics, sub.topic)
				}
			}
			h.mu.Unlock()

			sub.client.mu.Lock()
			delete(sub.client.topics, sub.topic)
			sub.client.mu.Unlock()

			log.Printf("[WS-Server] Client unsubscribed from %s", sub.topic)

		case update := <-h.broadcast:
			h.mu.RLock()
			if clients, exists := h.topics[update.Topic]; exists {
				message, _ := json.Marshal(update)
				for client := range clients {
					select {
					case client.send <- message:
					default:
						close(client.send)
						delete(h.clients, client)
					}
				}
				log.Printf("[WS-Server] Broadcasted %s event to %d clients", update.Topic, len(clients))
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) sendLockSnapshot(client *Client) {
	if h.queryClient == nil {
		log.Printf("[WS-Server] No gRPC client available, skipping lock snapshot")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.queryClient.LastLock(ctx, &escrowtypes.QueryLastLockRequest{})
	if err != nil {
		// NotFound just means no lock has happened yet
		log.Printf("[WS-Server] No lock snapshot available: %v", err)
		return
	}

	update := &EscrowEvent{
		Topic:     TopicLock,
		Timestamp: time.Now(),
		Event:     EventSnapshot,
		Attributes: map[string]string{
			"user":           res.Lock.User,
			"from_denom":     res.Lock.FromDenom,
			"dest_token":     res.Lock.DestToken,
			"in_amount":      res.Lock.InAmount.String(),
			"swapped_amount": res.Lock.SwappedAmount.String(),
			"recipient":      res.Lock.Recipient,
		},
	}

	message, _ := json.Marshal(update)
	select {
	case client.send <- message:
		log.Printf("[WS-Server] Sent lock snapshot to client")
	default:
		log.Printf("[WS-Server] Failed to send lock snapshot to client (channel full)")
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS-Server] WebSocket error: %v", err)
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("[WS-Server] Error unmarshaling message: %v", err)
			continue
		}

		switch msg.Type {
		case MsgTypeSubscribe:
			if msg.Topic == TopicLock || msg.Topic == TopicRelease {
				c.hub.subscribe <- &Subscription{
					client: c,
					topic:  msg.Topic,
				}
			}
		case MsgTypeUnsubscribe:
			if msg.Topic != "" {
				c.hub.unsubscribe <- &Subscription{
					client: c,
					topic:  msg.Topic,
				}
			}
		case MsgTypePing:
			pong := map[string]string{"type": EventPong}
			pongBytes, _ := json.Marshal(pong)
			c.send <- pongBytes
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS-Server] Upgrade error: %v", err)
		return
	}

	client := &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		topics: make(map[string]bool),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// subscribeCometBFTEvents connects to the CometBFT WebSocket and subscribes
// to escrow module tx events. Reconnects forever.
func subscribeCometBFTEvents(hub *Hub, cometWSURL string) error {
	log.Printf("[WS-Server] Connecting to CometBFT WebSocket at %s...", cometWSURL)

	for {
		conn, _, err := websocket.DefaultDialer.Dial(cometWSURL, nil)
		if err != nil {
			log.Printf("[WS-Server] Failed to connect to CometBFT WebSocket: %v. Retrying in 5 seconds...", err)
			time.Sleep(5 * time.Second)
			continue
		}

		log.Println("[WS-Server] Connected to CometBFT WebSocket")

		subscribeToEvent(conn, escrowtypes.EventTypeLock, escrowtypes.AttributeKeyUser, 1)
		subscribeToEvent(conn, escrowtypes.EventTypeRelease, escrowtypes.AttributeKeyUser, 2)

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("[WS-Server] CometBFT WebSocket read error: %v. Reconnecting...", err)
				conn.Close()
				break
			}

			var response CometBFTEventResponse
			if err := json.Unmarshal(message, &response); err != nil {
				log.Printf("[WS-Server] Failed to parse CometBFT event: %v", err)
				continue
			}

			if response.Result.Query == "" {
				continue
			}

			processTxEvent(hub, response)
		}
	}
}

func subscribeToEvent(conn *websocket.Conn, eventType, attrKey string, id int) {
	subscribeRequest := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "subscribe",
		"params": map[string]interface{}{
			"query": fmt.Sprintf("tm.event='Tx' AND %s.%s EXISTS", eventType, attrKey),
		},
	}

	requestBytes, _ := json.Marshal(subscribeRequest)
	if err := conn.WriteMessage(websocket.TextMessage, requestBytes); err != nil {
		log.Printf("[WS-Server] Failed to subscribe to %s events: %v", eventType, err)
	} else {
		log.Printf("[WS-Server] Subscribed to %s events", eventType)
	}
}

func processTxEvent(hub *Hub, response CometBFTEventResponse) {
	if response.Result.Events == nil {
		return
	}

	for _, topic := range []string{TopicLock, TopicRelease} {
		users, ok := response.Result.Events[topic+".user"]
		if !ok || len(users) == 0 {
			continue
		}

		prefix := topic + "."
		attributes := make(map[string]string)
		for key, values := range response.Result.Events {
			if len(values) == 0 {
				continue
			}
			if strings.HasPrefix(key, prefix) {
				attributes[strings.TrimPrefix(key, prefix)] = values[0]
			}
		}

		log.Printf("[WS-Server] CometBFT event received: %s", topic)
		hub.broadcast <- &EscrowEvent{
			Topic:      topic,
			Timestamp:  time.Now(),
			Event:      topic,
			Attributes: attributes,
		}
	}
}

// Start starts the WebSocket server with the given configuration
// This function blocks, so call it in a goroutine if needed
func Start(cfg Config) error {
	log.Printf("[WS-Server] Starting WebSocket server on %s", cfg.Port)

	// Create gRPC connection (optional - for serving lock snapshots)
	var grpcConn *grpc.ClientConn
	var err error
	if cfg.GRPCAddress != "" {
		creds := insecure.NewCredentials()
		if cfg.UseTLS {
			creds = credentials.NewClientTLSFromCert(nil, "")
		}
		grpcConn, err = grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(creds))
		if err != nil {
			log.Printf("[WS-Server] Warning: Failed to connect to gRPC at %s: %v (continuing without lock snapshots)", cfg.GRPCAddress, err)
			grpcConn = nil
		} else {
			log.Printf("[WS-Server] Connected to gRPC at %s", cfg.GRPCAddress)
		}
	}

	hub := newHub(grpcConn)
	go hub.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":        "ok",
			"clients":       len(hub.clients),
			"active_topics": len(hub.topics),
		})
	})

	log.Printf("[WS-Server] WebSocket endpoint: ws://localhost%s/ws", cfg.Port)
	log.Printf("[WS-Server] Health check: http://localhost%s/health", cfg.Port)

	var g errgroup.Group
	g.Go(func() error {
		return subscribeCometBFTEvents(hub, cfg.CometBFTWSURL)
	})
	g.Go(func() error {
		return http.ListenAndServe(cfg.Port, mux)
	})

	return g.Wait()
}

// StartAsync starts the WebSocket server in a background goroutine
func StartAsync(cfg Config) {
	go func() {
		if err := Start(cfg); err != nil {
			log.Printf("[WS-Server] Error: %v", err)
		}
	}()
}
