package repository

import (
	"context"
	"encoding/json"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentEventsTableName = "payment_events"
	paymentEventsRequestIndex     = "request_id-index"
)

type paymentEventItem struct {
	ID              string `dynamodbav:"id"`
	RequestID       string `dynamodbav:"request_id"`
	Date            string `dynamodbav:"date"`
	Status          string `dynamodbav:"status"`
	ProviderPayload string `dynamodbav:"provider_payload,omitempty"`
}

// PaymentEventDynamoRepository is an append-only audit store for payment
// notifications. Table PK: id, GSI request_id-index (PK: request_id).
type PaymentEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentEventRepository = (*PaymentEventDynamoRepository)(nil)

func NewPaymentEventDynamoRepository(ddb *dynamodb.Client) *PaymentEventDynamoRepository {
	return &PaymentEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_EVENTS_TABLE", defaultPaymentEventsTableName),
	}
}

func (r *PaymentEventDynamoRepository) Create(ctx context.Context, ev entities.PaymentEvent) (entities.PaymentEvent, error) {
	av, err := attributevalue.MarshalMap(toPaymentEventItem(ev))
	if err != nil {
		return entities.PaymentEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}
	return ev, nil
}

func (r *PaymentEventDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.PaymentEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentEventsRequestIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.PaymentEvent, 0, len(out.Items))
	for _, item := range out.Items {
		var it paymentEventItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		events = append(events, fromPaymentEventItem(it))
	}
	return events, nil
}

func toPaymentEventItem(ev entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		ID:              ev.ID,
		RequestID:       ev.RequestID,
		Date:            ev.Date.UTC().Format(time.RFC3339Nano),
		Status:          string(ev.Status),
		ProviderPayload: string(ev.ProviderPayloadRaw),
	}
}

func fromPaymentEventItem(it paymentEventItem) entities.PaymentEvent {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	ev := entities.PaymentEvent{
		ID:        it.ID,
		RequestID: it.RequestID,
		Date:      date,
		Status:    entities.PaymentEventStatus(it.Status),
	}
	if it.ProviderPayload != "" {
		ev.ProviderPayloadRaw = json.RawMessage(it.ProviderPayload)
		var payload map[string]any
		if err := json.Unmarshal(ev.ProviderPayloadRaw, &payload); err == nil {
			ev.ProviderPayload = payload
		}
	}
	return ev
}
