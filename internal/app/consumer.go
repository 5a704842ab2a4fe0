package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-writeup/internal/config"
	"go-writeup/internal/messaging/kafka/consumer"
	"go-writeup/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const notificationGroupID = "go-writeup-notifications"

// RunConsumer delivers write-up and standing notifications from Kafka to
// the Slack webhooks until SIGINT/SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	if cfg.SlackAlertWebhookURL == "" && cfg.SlackWriteUpWebhookURL == "" {
		logger.Warn("no slack webhook configured, messages will be committed without delivery")
	}

	dispatcher := notify.NewDispatcher(
		notify.NewSlackSender(),
		cfg.SlackWriteUpWebhookURL,
		cfg.SlackAlertWebhookURL,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupTopics:    dispatcher.Topics(),
		GroupID:        notificationGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeNotifications(ctx, reader, dispatcher, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
