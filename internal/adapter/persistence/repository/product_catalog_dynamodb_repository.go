package repository

import (
	"context"

	"printworks/internal/domain/entities"
	"printworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultProductCatalogTableName = "product_catalog"

type catalogProductItem struct {
	Name         string            `dynamodbav:"name"`
	BasePrice    string            `dynamodbav:"base_price"`
	OptionDeltas map[string]string `dynamodbav:"option_deltas,omitempty"`
}

// ProductCatalogDynamoRepository reads the priced product list. Table PK:
// name. Unknown products come back as a zero record with a nil error; the
// caller decides whether that is fatal.
type ProductCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductCatalog = (*ProductCatalogDynamoRepository)(nil)

func NewProductCatalogDynamoRepository(ddb *dynamodb.Client) *ProductCatalogDynamoRepository {
	return &ProductCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCT_CATALOG_TABLE", defaultProductCatalogTableName),
	}
}

func (r *ProductCatalogDynamoRepository) GetPrice(ctx context.Context, productName string) (entities.CatalogProduct, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: productName},
		},
	})
	if err != nil {
		return entities.CatalogProduct{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogProduct{}, nil
	}

	var it catalogProductItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogProduct{}, err
	}

	product := entities.CatalogProduct{
		Name:      it.Name,
		BasePrice: decimalFromString(it.BasePrice),
	}
	if len(it.OptionDeltas) > 0 {
		product.OptionDeltas = make(map[string]decimal.Decimal, len(it.OptionDeltas))
		for opt, delta := range it.OptionDeltas {
			product.OptionDeltas[opt] = decimalFromString(delta)
		}
	}
	return product, nil
}
