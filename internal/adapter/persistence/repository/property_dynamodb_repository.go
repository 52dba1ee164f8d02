package repository

import (
	"context"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPropertiesTableName = "properties"

type propertyItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Address     string `dynamodbav:"address"`
	Type        string `dynamodbav:"type"`
	Bedrooms    int    `dynamodbav:"bedrooms"`
	Bathrooms   int    `dynamodbav:"bathrooms"`
	Size        int    `dynamodbav:"size"`
	Rent        string `dynamodbav:"rent"`
	Status      string `dynamodbav:"status"`
	TenantID    string `dynamodbav:"tenant_id,omitempty"`
	Description string `dynamodbav:"description,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PropertyDynamoRepository persists Property entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PropertyDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPropertyRepository = (*PropertyDynamoRepository)(nil)

func NewPropertyDynamoRepository(ddb *dynamodb.Client) *PropertyDynamoRepository {
	return &PropertyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPERTIES_TABLE", defaultPropertiesTableName),
	}
}

func (r *PropertyDynamoRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Property{}, err
	}
	if len(raw) == 0 {
		return entities.Property{}, nil
	}
	return unmarshalProperty(raw)
}

func (r *PropertyDynamoRepository) List(ctx context.Context) ([]entities.Property, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Property, 0, len(raws))
	for _, raw := range raws {
		p, err := unmarshalProperty(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *PropertyDynamoRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		return entities.Property{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Property{}, err
	}
	return p, nil
}

func (r *PropertyDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func unmarshalProperty(raw map[string]types.AttributeValue) (entities.Property, error) {
	var it propertyItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Property{}, err
	}
	return fromPropertyItem(it), nil
}

func toPropertyItem(p entities.Property) propertyItem {
	return propertyItem{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Type:        string(p.Type),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Size:        p.Size,
		Rent:        p.Rent.String(),
		Status:      string(p.Status),
		TenantID:    p.TenantID,
		Description: p.Description,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
}

func fromPropertyItem(it propertyItem) entities.Property {
	return entities.Property{
		ID:          it.ID,
		Name:        it.Name,
		Address:     it.Address,
		Type:        entities.PropertyType(it.Type),
		Bedrooms:    it.Bedrooms,
		Bathrooms:   it.Bathrooms,
		Size:        it.Size,
		Rent:        parseDecimal(it.Rent),
		Status:      entities.PropertyStatus(it.Status),
		TenantID:    it.TenantID,
		Description: it.Description,
		CreatedAt:   parseTimestamp(it.CreatedAt),
		UpdatedAt:   parseTimestamp(it.UpdatedAt),
	}
}

