package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

func randFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func randomPoints(n int) []point {
	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{
			X: randFloat(0, 1920),
			Y: randFloat(0, 1080),
		}
	}
	return pts
}

func send(conn *websocket.Conn, event string, payload any) error {
	data, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func main() {
	var (
		wsURL    = flag.String("url", "ws://localhost:8080/ws?roomId=test", "ws url")
		name     = flag.String("name", "smoke-bot", "display name")
		rate     = flag.Int("rate", 50, "strokes per second")
		duration = flag.Int("duration", 10, "seconds")
		withUndo = flag.Bool("undo", true, "fire an undo every 10th stroke")
	)
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*wsURL, nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer conn.Close()

	log.Println("connected to", *wsURL)

	// drain inbound so the server never sees us as slow
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := send(conn, "join", map[string]string{"name": *name}); err != nil {
		log.Fatal("join:", err)
	}

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()

	end := time.After(time.Duration(*duration) * time.Second)

	var sent int

	for {
		select {
		case <-end:
			log.Println("done, strokes sent:", sent)
			return

		case <-ticker.C:
			pts := randomPoints(2 + rand.Intn(10))

			// a few live segments, then the commit
			for i := 0; i+1 < len(pts); i++ {
				_ = send(conn, "drawing_live", map[string]any{
					"p1":    pts[i],
					"p2":    pts[i+1],
					"color": "#000000",
					"width": 3,
				})
			}

			if err := send(conn, "draw_stroke", map[string]any{
				"id":     uuid.NewString(),
				"color":  "#000000",
				"width":  3,
				"tool":   "pencil",
				"points": pts,
			}); err != nil {
				log.Println("write error:", err)
				return
			}
			sent++

			if *withUndo && sent%10 == 0 {
				_ = send(conn, "undo", nil)
			}
		}
	}
}
