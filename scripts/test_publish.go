//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

type AssetCleanupEvent struct {
	Bucket   string `json:"bucket"`
	Path     string `json:"path"`
	Reason   string `json:"reason"`
	Attempts int    `json:"attempts"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	bucket := flag.String("bucket", "site-images", "Storage bucket")
	path := flag.String("path", "hero/test-image.jpg", "Stored object path")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := AssetCleanupEvent{
		Bucket: *bucket,
		Path:   *path,
		Reason: "manual_test",
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "assets:cleanup",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published successfully!\n")
	fmt.Printf("   Stream: assets:cleanup\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Object: %s/%s\n", event.Bucket, event.Path)
	fmt.Printf("\nThe cleanup worker will drop the message if the path is still referenced.\n")
}
