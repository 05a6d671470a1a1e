package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/time/rate"

	"github.com/planmetric/roomplan-engine/internal/geometry"
	"github.com/planmetric/roomplan-engine/internal/protocol"
	"github.com/planmetric/roomplan-engine/internal/roomgraph"
	"github.com/planmetric/roomplan-engine/internal/web/views"
	"github.com/planmetric/roomplan-engine/internal/ws"
)

func main() {
	logger := NewLogger()

	snapSize := roomgraph.DefaultSnapSize
	if v := os.Getenv("SNAP_SIZE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			log.Fatalf("invalid SNAP_SIZE %q: %v", v, err)
		}
		snapSize = parsed
	}

	var plan *geometry.PlanDefinition
	if path := os.Getenv("PLAN_FILE"); path != "" {
		loaded, err := geometry.LoadPlanFromFile(path)
		if err != nil {
			log.Fatalf("failed to load plan: %v", err)
		}
		plan = loaded
	} else {
		plan = geometry.DevPlan()
	}

	engine := NewRoomEngine(plan, snapSize, logger)
	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	broadcaster := NewBroadcaster(hub, sequence)
	handlers := NewIntentHandlers(engine, broadcaster, logger)

	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir("internal/web/static"))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		clientID := hub.Add(conn)
		logger.Printf("client %s connected (%d total)", clientID, hub.Count())

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: 0,
			EventID:  0,
			Type:     "VariablesChanged",
			Payload:  protocol.VariablesChanged{Entries: map[string]any{"clientId": clientID}},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn, clientID string) {
			defer hub.Remove(clientID)
			defer c.Close(websocket.StatusNormalClosure, "")

			// Rebuilds are expensive relative to reads, so throttle
			// intents per connection.
			limiter := rate.NewLimiter(rate.Every(200*time.Millisecond), 5)

			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					logger.Printf("client %s disconnected", clientID)
					return
				}
				if !limiter.Allow() {
					logger.Printf("client %s rate limited", clientID)
					continue
				}
				if err := handlers.HandleWebSocketMessage(data); err != nil {
					logger.Printf("intent from %s failed: %v", clientID, err)
				}
			}
		}(conn, clientID)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if err := views.IndexPage(engine.Snapshot()).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
