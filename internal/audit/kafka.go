package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink publishes audit events to a topic, keyed by organization so events for
// one organization stay ordered within a partition.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaClient builds a producer client for the given seed brokers.
func NewKafkaClient(brokers []string, opts ...kgo.Opt) (*kgo.Client, error) {
	opts = append([]kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5 * time.Millisecond),
	}, opts...)
	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return client, nil
}

func NewKafkaSink(client *kgo.Client, topic string) *KafkaSink {
	return &KafkaSink{client: client, topic: topic}
}

// kafkaPayload is the JSON published to the audit topic.
type kafkaPayload struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Timestamp      string `json:"timestamp"`
	Action         string `json:"action"`
	Organization   string `json:"organization"`
	ProposalID     string `json:"proposal_id,omitempty"`
	TreasuryAction string `json:"treasury_action,omitempty"`
	Actor          string `json:"actor,omitempty"`
	Token          string `json:"token,omitempty"`
	Amount         string `json:"amount,omitempty"`
	RequestID      string `json:"request_id,omitempty"`
}

func (s *KafkaSink) Append(ctx context.Context, event Event) error {
	value, err := json.Marshal(kafkaPayload{
		ID:             event.ID,
		Category:       string(event.Category),
		Timestamp:      event.Timestamp.UTC().Format(time.RFC3339Nano),
		Action:         event.Action,
		Organization:   event.Organization,
		ProposalID:     event.ProposalID,
		TreasuryAction: event.TreasuryAction,
		Actor:          event.Actor,
		Token:          event.Token,
		Amount:         event.Amount,
		RequestID:      event.RequestID,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.Organization),
		Value: value,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}
