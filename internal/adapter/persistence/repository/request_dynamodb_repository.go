package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultRequestsTableName = "requests"
	requestsPaymentRefIndex  = "payment_ref-index"
	requestsStatusIndex      = "status-index"
)

type lineItemItem struct {
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Quantity  int    `dynamodbav:"quantity"`
}

type sundryItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Quantity    int    `dynamodbav:"quantity"`
	AddedAt     string `dynamodbav:"added_at"`
}

type quoteDetailsItem struct {
	Specifications string `dynamodbav:"specifications"`
	Deadline       string `dynamodbav:"deadline,omitempty"`
}

type priceMatchDetailsItem struct {
	CompetitorName  string `dynamodbav:"competitor_name"`
	CompetitorPrice string `dynamodbav:"competitor_price"`
	ProofURL        string `dynamodbav:"proof_url,omitempty"`
}

type requestItem struct {
	ID                  string                 `dynamodbav:"id"`
	Kind                string                 `dynamodbav:"kind"`
	Status              string                 `dynamodbav:"status"`
	PaymentStatus       string                 `dynamodbav:"payment_status"`
	ProductionStatus    string                 `dynamodbav:"production_status,omitempty"`
	LineItems           []lineItemItem         `dynamodbav:"line_items"`
	Sundries            []sundryItem           `dynamodbav:"sundries"`
	Subtotal            string                 `dynamodbav:"subtotal"`
	Tax                 string                 `dynamodbav:"tax"`
	Total               string                 `dynamodbav:"total"`
	TaxApplicable       bool                   `dynamodbav:"tax_applicable"`
	TaxRate             string                 `dynamodbav:"tax_rate"`
	QuoteDetails        *quoteDetailsItem      `dynamodbav:"quote_details,omitempty"`
	PriceMatchDetails   *priceMatchDetailsItem `dynamodbav:"price_match_details,omitempty"`
	NoPaymentException  bool                   `dynamodbav:"no_payment_exception,omitempty"`
	CustomerRef         string                 `dynamodbav:"customer_ref"`
	AssignedOperatorRef string                 `dynamodbav:"assigned_operator_ref,omitempty"`
	ExternalPaymentRef  string                 `dynamodbav:"external_payment_ref,omitempty"`
	RejectReason        string                 `dynamodbav:"reject_reason,omitempty"`
	PaidAt              string                 `dynamodbav:"paid_at,omitempty"`
	CreatedAt           string                 `dynamodbav:"created_at"`
	UpdatedAt           string                 `dynamodbav:"updated_at"`
	Version             int64                  `dynamodbav:"version"`
}

// RequestDynamoRepository persists RequestRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_ref-index (PK: external_payment_ref)
//   - GSI: status-index (PK: status)
//
// Writes are conditional on the version attribute. Each successful Save
// increments version by one, so two writers racing on the same read lose
// deterministically: the second Put fails its condition check.

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, rec entities.RequestRecord) (entities.RequestRecord, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(rec))
	if err != nil {
		return entities.RequestRecord{}, err
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
		return entities.RequestRecord{}, err
	}
	return rec, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RequestRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.RequestRecord{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RequestRecord{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) GetByPaymentRef(ctx context.Context, ref string) (entities.RequestRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsPaymentRefIndex),
		KeyConditionExpression: aws.String("external_payment_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: ref},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.RequestRecord{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.RequestRecord{}, err
	}
	// GSI reads are eventually consistent; re-read by PK for the
	// authoritative version before any conditional write.
	return r.GetByID(ctx, it.ID)
}

func (r *RequestDynamoRepository) Save(ctx context.Context, rec entities.RequestRecord, expectedVersion int64) (entities.RequestRecord, error) {
	rec.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toRequestItem(rec))
	if err != nil {
		return entities.RequestRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RequestRecord{}, interfaces.ErrVersionConflict
		}
		return entities.RequestRecord{}, err
	}
	return rec, nil
}

func (r *RequestDynamoRepository) ListRecords(ctx context.Context, filter interfaces.ListFilter) ([]entities.RequestRecord, error) {
	var raw []map[string]types.AttributeValue

	if filter.Status != "" {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(requestsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
			},
		})
		if err != nil {
			return nil, err
		}
		raw = out.Items
	} else {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
		})
		if err != nil {
			return nil, err
		}
		raw = out.Items
	}

	records := make([]entities.RequestRecord, 0, len(raw))
	for _, item := range raw {
		var it requestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		rec := fromRequestItem(it)
		if filter.Kind != "" && rec.Kind != filter.Kind {
			continue
		}
		if filter.PaymentStatus != "" && rec.PaymentStatus != filter.PaymentStatus {
			continue
		}
		if filter.ProductionStatus != "" && rec.ProductionStatus != filter.ProductionStatus {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func toRequestItem(rec entities.RequestRecord) requestItem {
	it := requestItem{
		ID:                  rec.ID,
		Kind:                string(rec.Kind),
		Status:              string(rec.Status),
		PaymentStatus:       string(rec.PaymentStatus),
		ProductionStatus:    string(rec.ProductionStatus),
		LineItems:           make([]lineItemItem, 0, len(rec.LineItems)),
		Sundries:            make([]sundryItem, 0, len(rec.Sundries)),
		Subtotal:            rec.Subtotal.String(),
		Tax:                 rec.Tax.String(),
		Total:               rec.Total.String(),
		TaxApplicable:       rec.TaxPolicy.Applicable,
		TaxRate:             rec.TaxPolicy.Rate.String(),
		NoPaymentException:  rec.NoPaymentException,
		CustomerRef:         rec.CustomerRef,
		AssignedOperatorRef: rec.AssignedOperatorRef,
		ExternalPaymentRef:  rec.ExternalPaymentRef,
		RejectReason:        rec.RejectReason,
		CreatedAt:           rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:             rec.Version,
	}
	for _, li := range rec.LineItems {
		it.LineItems = append(it.LineItems, lineItemItem{Name: li.Name, UnitPrice: li.UnitPrice.String(), Quantity: li.Quantity})
	}
	for _, s := range rec.Sundries {
		it.Sundries = append(it.Sundries, sundryItem{
			ID:          s.ID,
			Description: s.Description,
			UnitPrice:   s.UnitPrice.String(),
			Quantity:    s.Quantity,
			AddedAt:     s.AddedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	if rec.QuoteDetails != nil {
		q := quoteDetailsItem{Specifications: rec.QuoteDetails.Specifications}
		if rec.QuoteDetails.Deadline != nil {
			q.Deadline = rec.QuoteDetails.Deadline.UTC().Format(time.RFC3339Nano)
		}
		it.QuoteDetails = &q
	}
	if rec.PriceMatchDetails != nil {
		it.PriceMatchDetails = &priceMatchDetailsItem{
			CompetitorName:  rec.PriceMatchDetails.CompetitorName,
			CompetitorPrice: rec.PriceMatchDetails.CompetitorPrice.String(),
			ProofURL:        rec.PriceMatchDetails.ProofURL,
		}
	}
	if rec.PaidAt != nil {
		it.PaidAt = rec.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRequestItem(it requestItem) entities.RequestRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	rec := entities.RequestRecord{
		ID:               it.ID,
		Kind:             entities.RequestKind(it.Kind),
		Status:           entities.Status(it.Status),
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		ProductionStatus: entities.ProductionStatus(it.ProductionStatus),
		LineItems:        make([]entities.LineItem, 0, len(it.LineItems)),
		Sundries:         make([]entities.Sundry, 0, len(it.Sundries)),
		Subtotal:         decimalFromString(it.Subtotal),
		Tax:              decimalFromString(it.Tax),
		Total:            decimalFromString(it.Total),
		TaxPolicy: entities.TaxPolicy{
			Applicable: it.TaxApplicable,
			Rate:       decimalFromString(it.TaxRate),
		},
		NoPaymentException:  it.NoPaymentException,
		CustomerRef:         it.CustomerRef,
		AssignedOperatorRef: it.AssignedOperatorRef,
		ExternalPaymentRef:  it.ExternalPaymentRef,
		RejectReason:        it.RejectReason,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
		Version:             it.Version,
	}
	for _, li := range it.LineItems {
		rec.LineItems = append(rec.LineItems, entities.LineItem{Name: li.Name, UnitPrice: decimalFromString(li.UnitPrice), Quantity: li.Quantity})
	}
	for _, s := range it.Sundries {
		addedAt, _ := time.Parse(time.RFC3339Nano, s.AddedAt)
		rec.Sundries = append(rec.Sundries, entities.Sundry{
			ID:          s.ID,
			Description: s.Description,
			UnitPrice:   decimalFromString(s.UnitPrice),
			Quantity:    s.Quantity,
			AddedAt:     addedAt,
		})
	}
	if it.QuoteDetails != nil {
		q := entities.QuoteDetails{Specifications: it.QuoteDetails.Specifications}
		if it.QuoteDetails.Deadline != "" {
			if deadline, err := time.Parse(time.RFC3339Nano, it.QuoteDetails.Deadline); err == nil {
				q.Deadline = &deadline
			}
		}
		rec.QuoteDetails = &q
	}
	if it.PriceMatchDetails != nil {
		rec.PriceMatchDetails = &entities.PriceMatchDetails{
			CompetitorName:  it.PriceMatchDetails.CompetitorName,
			CompetitorPrice: decimalFromString(it.PriceMatchDetails.CompetitorPrice),
			ProofURL:        it.PriceMatchDetails.ProofURL,
		}
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			rec.PaidAt = &paidAt
		}
	}
	return rec
}

func decimalFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
