package repository

import (
	"context"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSundryTemplatesTableName = "sundry_templates"

type sundryTemplateItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	UnitPrice   string `dynamodbav:"unit_price"`
	CreatedAt   string `dynamodbav:"created_at"`
}

type SundryTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISundryTemplateRepository = (*SundryTemplateDynamoRepository)(nil)

func NewSundryTemplateDynamoRepository(ddb *dynamodb.Client) *SundryTemplateDynamoRepository {
	return &SundryTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUNDRY_TEMPLATES_TABLE", defaultSundryTemplatesTableName),
	}
}

func (r *SundryTemplateDynamoRepository) Create(ctx context.Context, tpl entities.SundryTemplate) (entities.SundryTemplate, error) {
	av, err := attributevalue.MarshalMap(sundryTemplateItem{
		ID:          tpl.ID,
		Description: tpl.Description,
		UnitPrice:   tpl.UnitPrice.String(),
		CreatedAt:   tpl.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.SundryTemplate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.SundryTemplate{}, err
	}
	return tpl, nil
}

func (r *SundryTemplateDynamoRepository) List(ctx context.Context) ([]entities.SundryTemplate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	templates := make([]entities.SundryTemplate, 0, len(out.Items))
	for _, item := range out.Items {
		var it sundryTemplateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		templates = append(templates, entities.SundryTemplate{
			ID:          it.ID,
			Description: it.Description,
			UnitPrice:   decimalFromString(it.UnitPrice),
			CreatedAt:   createdAt,
		})
	}
	return templates, nil
}
