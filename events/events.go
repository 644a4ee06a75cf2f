// Package events 在收支记录与预算变更成功后发布通知。
package events

import (
	"context"
	"encoding/json"
	"time"
)

// 事件名，同时作为 AMQP routing key
const (
	TransactionCreated = "transaction.created"
	TransactionUpdated = "transaction.updated"
	TransactionDeleted = "transaction.deleted"
	BudgetUpserted     = "budget.upserted"
	BudgetUpdated      = "budget.updated"
	BudgetDeleted      = "budget.deleted"
)

// Event 变更事件，删除事件的 Payload 为空
type Event struct {
	Name       string          `json:"name"`
	ID         string          `json:"id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// New 构造事件，payload 序列化失败时忽略负载
func New(name, id string, payload any) Event {
	e := Event{Name: name, ID: id, OccurredAt: time.Now().UTC()}
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			e.Payload = b
		}
	}
	return e
}

// ToJSON 序列化事件
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher 事件发布接口
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop 不发布任何事件
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }
