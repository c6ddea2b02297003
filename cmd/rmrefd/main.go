package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/librescoot/rmrefd/pkg/redis"
	"github.com/librescoot/rmrefd/pkg/session"
	"github.com/librescoot/rmrefd/pkg/telemetry"
)

var (
	serialDevice = flag.String("serial", "/dev/ttyUSB0", "Serial device path to the referee system")
	redisAddr    = flag.String("redis-addr", "localhost:6379", "Redis server address")
	redisPass    = flag.String("redis-pass", "", "Redis password")
	redisDB      = flag.Int("redis-db", 0, "Redis database number")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("Starting referee system bridge")
	log.Printf("Serial device: %s", *serialDevice)
	log.Printf("Redis address: %s", *redisAddr)

	redisClient, err := redis.New(*redisAddr, *redisPass, *redisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Printf("Connected to Redis")

	reader, _, err := session.Connect(*serialDevice)
	if err != nil {
		log.Fatalf("Failed to connect to referee system: %v", err)
	}
	log.Printf("Connected to referee system over %s", *serialDevice)

	watch := session.NewWatch()
	watch.Spawn(reader)
	log.Printf("Watch demultiplexer running")

	ctx, cancel := context.WithCancel(context.Background())
	bridge := telemetry.New(redisClient, watch)
	go bridge.Run(ctx)
	log.Printf("Forwarding telemetry to Redis")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	log.Printf("Shutting down...")
	cancel()
	watch.Stop()
	watch.Wait()
}
