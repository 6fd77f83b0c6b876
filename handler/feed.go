package handler

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const transactionFeedChannel = "transactions:feed"

var (
	redisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

	feedClients = make(map[*websocket.Conn]bool)
	feedMu      sync.Mutex
)

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// TransactionEvent is what admin dashboards receive when a transaction is
// created or changes status.
type TransactionEvent struct {
	TransactionId uint   `json:"transactionId"`
	InvoiceId     string `json:"invoiceId"`
	UserId        uint   `json:"userId"`
	Status        string `json:"status"`
	Amount        int    `json:"amount"`
}

// PublishTransactionEvent pushes an event onto the Redis feed channel.
// Failures are logged, never surfaced: the feed is best effort.
func PublishTransactionEvent(event TransactionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Marshal transaction event failed: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), transactionFeedChannel, payload).Err(); err != nil {
		log.Printf("Publish transaction event failed: %v", err)
	}
}

// TransactionFeed keeps an admin dashboard connection updated. The latest
// transactions are sent once on connect, then every published event is
// relayed until the socket closes.
func TransactionFeed(c *websocket.Conn) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		c.Close()
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != constants.ROLE_ADMIN {
		c.Close()
		return
	}

	defer func() {
		feedMu.Lock()
		delete(feedClients, c)
		feedMu.Unlock()
		c.Close()
	}()

	feedMu.Lock()
	feedClients[c] = true
	feedMu.Unlock()

	transactions := model.Transactions{}
	if err := database.DB.Preload("Items").Order("id DESC").Limit(20).Find(&transactions).Error; err == nil {
		c.WriteJSON(transactions)
	}

	pubsub := redisClient.Subscribe(context.Background(), transactionFeedChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		feedMu.Lock()
		for conn := range feedClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(feedClients, conn)
			}
		}
		feedMu.Unlock()
	}
}
