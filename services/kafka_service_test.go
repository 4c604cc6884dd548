package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order-api/models"
)

func TestNewKafkaConfig(t *testing.T) {
	config := NewKafkaConfig()

	assert.Equal(t, sarama.WaitForAll, config.Producer.RequiredAcks)
	assert.Equal(t, 5, config.Producer.Retry.Max)
	assert.True(t, config.Producer.Return.Successes)
	assert.NoError(t, config.Validate())
}

func TestKafkaService_PushMessage(t *testing.T) {
	log, _ := test.NewNullLogger()
	producer := mocks.NewSyncProducer(t, NewKafkaConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"hello":"world"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	svc := NewKafkaServiceWithProducer(producer, log)

	require.NoError(t, svc.PushMessage("order-topic", []byte("1"), []byte(`{"hello":"world"}`)))

	err := svc.PushMessage("order-topic", nil, []byte(`{}`))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), "order-topic")

	require.NoError(t, svc.Close())
}

func TestKafkaOrderPublisher_Publish(t *testing.T) {
	kafka := new(MockKafkaService)
	event := models.OrderEvent{
		EventID:    "e-1",
		Type:       models.OrderCreated,
		OrderID:    42,
		CustomerID: 1,
		ProductID:  2,
		Quantity:   3,
		OccurredAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	kafka.On("PushMessage", "order-topic", []byte("42"), payload).Return(nil).Once()
	kafka.On("PushMessage", "order-topic", []byte("42"), payload).Return(errors.New("kafka connection error")).Once()

	pub := NewKafkaOrderPublisher(kafka, "order-topic")

	assert.NoError(t, pub.Publish(context.Background(), event))
	assert.EqualError(t, pub.Publish(context.Background(), event), "kafka connection error")
	kafka.AssertExpectations(t)
}

func TestLogOrderPublisher_Publish(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	pub := NewLogOrderPublisher(log)
	require.NoError(t, pub.Publish(context.Background(), models.OrderEvent{EventID: "e-2", Type: models.OrderDeleted, OrderID: 9}))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, models.OrderDeleted, entry.Data["type"])
	assert.Equal(t, uint(9), entry.Data["order_id"])
}
