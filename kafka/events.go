package kafka

import "time"

// ItemListedEvent is emitted when a new item enters the catalog.
type ItemListedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ItemID    string    `json:"item_id"`
	ItemKind  string    `json:"item_kind"`
	SellerID  string    `json:"seller_id"`
	Category  string    `json:"category"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemPurchasedEvent is emitted when a transaction's payment
// completes.
type ItemPurchasedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	TransactionID string    `json:"transaction_id"`
	ItemID        string    `json:"item_id"`
	BuyerID       string    `json:"buyer_id"`
	SellerID      string    `json:"seller_id"`
	Amount        float64   `json:"amount"`
	CreditsUsed   int       `json:"credits_used"`
	PaymentMethod string    `json:"payment_method"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeItemListed    = "item.listed"
	EventTypeItemPurchased = "item.purchased"
)

// Kafka topics
const (
	TopicItemListed    = "item-listed"
	TopicItemPurchased = "item-purchased"
)
