package pkg

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// EventWriter 博客事件投递。按帖子 id 哈希分区，同一帖子的事件保序
type EventWriter struct {
	writer *kafka.Writer
}

func NewEventWriter(brokers []string, topic string) *EventWriter {
	return &EventWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (w *EventWriter) Close() error {
	if w == nil || w.writer == nil {
		return nil
	}
	return w.writer.Close()
}

func (w *EventWriter) Write(ctx context.Context, postID uint64, payload []byte) error {
	return w.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(postID, 10)),
		Value: payload,
	})
}
