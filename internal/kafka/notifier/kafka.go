package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"guild-service/internal/config"
	"sync"
	"time"
)

const topic = "guild-manager"

type GuildUpdateMessage struct {
	GuildId    string          `json:"guildId"`
	ChangeType GuildChangeType `json:"changeType"`
	Timestamp  time.Time       `json:"timestamp"`
}

type MemberUpdateMessage struct {
	GuildId    string           `json:"guildId"`
	PlayerId   string           `json:"playerId"`
	ChangeType MemberChangeType `json:"changeType"`
	Timestamp  time.Time        `json:"timestamp"`
}

type RoleUpdateMessage struct {
	GuildId   string    `json:"guildId"`
	PlayerId  string    `json:"playerId"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.Hash{},
		ErrorLogger: zap.NewStdLog(logger.Desugar()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaNotifier) GuildUpdate(ctx context.Context, guildId string, changeType GuildChangeType) error {
	msg := &GuildUpdateMessage{GuildId: guildId, ChangeType: changeType, Timestamp: time.Now()}
	if err := k.publishMessage(ctx, guildId, "GuildUpdateMessage", msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) MemberUpdate(ctx context.Context, guildId string, playerId string, changeType MemberChangeType) error {
	msg := &MemberUpdateMessage{GuildId: guildId, PlayerId: playerId, ChangeType: changeType, Timestamp: time.Now()}
	if err := k.publishMessage(ctx, guildId, "MemberUpdateMessage", msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) RoleUpdate(ctx context.Context, guildId string, playerId string, role string) error {
	msg := &RoleUpdateMessage{GuildId: guildId, PlayerId: playerId, Role: role, Timestamp: time.Now()}
	if err := k.publishMessage(ctx, guildId, "RoleUpdateMessage", msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) publishMessage(ctx context.Context, guildId string, messageType string, message any) error {
	kafkaMsg, err := newMessage(guildId, messageType, message)
	if err != nil {
		return err
	}

	if err := k.w.WriteMessages(ctx, kafkaMsg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// newMessage keys every message by guild id so that one guild's events stay ordered on one partition.
func newMessage(guildId string, messageType string, message any) (kafka.Message, error) {
	bytes, err := json.Marshal(message)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal message: %w", err)
	}

	return kafka.Message{
		Key:     []byte(guildId),
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Message-Type", Value: []byte(messageType)}},
	}, nil
}
