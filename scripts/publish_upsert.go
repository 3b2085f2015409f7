//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type AirportUpsertEvent struct {
	BatchID      uuid.UUID `json:"batch_id"`
	Ident        string    `json:"ident"`
	Name         string    `json:"name"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Municipality *string   `json:"municipality,omitempty"`
	Country      *string   `json:"country,omitempty"`
	ElevationFt  *int      `json:"elevation_ft,omitempty"`
	Category     string    `json:"category"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (Charles de Gaulle)
	event := AirportUpsertEvent{
		BatchID:      uuid.New(),
		Ident:        "LFPG",
		Name:         "Charles de Gaulle International Airport",
		Lat:          49.012798,
		Lon:          2.55,
		Municipality: ptr("Paris"),
		Country:      ptr("FR"),
		ElevationFt:  ptr(392),
		Category:     "large_airport",
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:catalog:upsert",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:catalog:upsert\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Batch ID: %s\n", event.BatchID)
	fmt.Printf("   Airport: %s (%s)\n", event.Name, event.Ident)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", event.Lat, event.Lon)

	// Ожидание ответа
	fmt.Printf("\n⏳ Waiting for response in stream:catalog:done...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{"stream:catalog:done", "0"},
				Count:   10,
				Block:   0,
			}).Result()

			if err != nil && err != redis.Nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var response map[string]interface{}
					if err := json.Unmarshal([]byte(dataStr), &response); err != nil {
						continue
					}

					if batchID, ok := response["batch_id"].(string); ok {
						if batchID == event.BatchID.String() {
							fmt.Printf("\n✅ Response received!\n")
							prettyJSON, _ := json.MarshalIndent(response, "", "  ")
							fmt.Printf("%s\n", prettyJSON)
							return
						}
					}
				}
			}
		}
	}
}
