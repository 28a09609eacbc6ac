package repository

import (
	"context"
	"errors"
	"fmt"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const DefaultServicesTableName = "services"

type serviceItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Description   string `dynamodbav:"description"`
	Category      string `dynamodbav:"category,omitempty"`
	Unit          string `dynamodbav:"unit"`
	Rate          string `dynamodbav:"rate"`
	QuantityBasis string `dynamodbav:"quantity_basis"`
}

// DynamoDBAPI is the subset of the DynamoDB client used by the catalog repository.
type DynamoDBAPI interface {
	dynamodb.ScanAPIClient
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ServiceDynamoRepository persists catalog Service entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Rates are stored as strings so decimal prices survive the round trip unchanged.

type ServiceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoDBAPI, tableName string) *ServiceDynamoRepository {
	if tableName == "" {
		tableName = DefaultServicesTableName
	}
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var services []entities.Service
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			svc, err := fromServiceItem(it)
			if err != nil {
				return nil, err
			}
			services = append(services, svc)
		}
	}
	sortServices(services)
	return services, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (bool, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return false, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		Category:      s.Category,
		Unit:          s.Unit,
		Rate:          s.Rate.String(),
		QuantityBasis: string(s.QuantityBasis),
	}
}

func fromServiceItem(it serviceItem) (entities.Service, error) {
	rate, err := decimal.NewFromString(it.Rate)
	if err != nil {
		return entities.Service{}, fmt.Errorf("service %q: invalid rate %q: %w", it.ID, it.Rate, err)
	}
	return entities.Service{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Category:      it.Category,
		Unit:          it.Unit,
		Rate:          rate,
		QuantityBasis: entities.QuantityBasis(it.QuantityBasis),
	}, nil
}
