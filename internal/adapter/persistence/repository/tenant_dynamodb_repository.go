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

const defaultTenantsTableName = "tenants"

type tenantItem struct {
	ID                string                      `dynamodbav:"id"`
	Name              string                      `dynamodbav:"name"`
	Email             string                      `dynamodbav:"email"`
	Phone             string                      `dynamodbav:"phone,omitempty"`
	Rent              string                      `dynamodbav:"rent"`
	Deposit           string                      `dynamodbav:"deposit"`
	LeaseStart        string                      `dynamodbav:"lease_start,omitempty"`
	LeaseEnd          string                      `dynamodbav:"lease_end,omitempty"`
	Status            string                      `dynamodbav:"status"`
	PropertyID        string                      `dynamodbav:"property_id,omitempty"`
	EmergencyContacts []entities.EmergencyContact `dynamodbav:"emergency_contacts,omitempty"`
	IDDocumentURL     string                      `dynamodbav:"id_document_url,omitempty"`
	LeaseDocumentURL  string                      `dynamodbav:"lease_document_url,omitempty"`
	Notes             string                      `dynamodbav:"notes,omitempty"`
	CreatedAt         string                      `dynamodbav:"created_at"`
	UpdatedAt         string                      `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing by status is a filtered scan; the tenants table stays small.

type TenantDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb *dynamodb.Client) *TenantDynamoRepository {
	return &TenantDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TENANTS_TABLE", defaultTenantsTableName),
	}
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if len(raw) == 0 {
		return entities.Tenant{}, nil
	}
	return unmarshalTenant(raw)
}

func (r *TenantDynamoRepository) List(ctx context.Context, status entities.TenantStatus) ([]entities.Tenant, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}
	raws, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Tenant, 0, len(raws))
	for _, raw := range raws {
		t, err := unmarshalTenant(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *TenantDynamoRepository) Update(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
	}
	ok, err := putExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func unmarshalTenant(raw map[string]types.AttributeValue) (entities.Tenant, error) {
	var it tenantItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func toTenantItem(t entities.Tenant) tenantItem {
	return tenantItem{
		ID:                t.ID,
		Name:              t.Name,
		Email:             t.Email,
		Phone:             t.Phone,
		Rent:              t.Rent.String(),
		Deposit:           t.Deposit.String(),
		LeaseStart:        formatDate(t.LeaseStart),
		LeaseEnd:          formatDate(t.LeaseEnd),
		Status:            string(t.Status),
		PropertyID:        t.PropertyID,
		EmergencyContacts: t.EmergencyContacts,
		IDDocumentURL:     t.IDDocumentURL,
		LeaseDocumentURL:  t.LeaseDocumentURL,
		Notes:             t.Notes,
		CreatedAt:         formatTimestamp(t.CreatedAt),
		UpdatedAt:         formatTimestamp(t.UpdatedAt),
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		ID:                it.ID,
		Name:              it.Name,
		Email:             it.Email,
		Phone:             it.Phone,
		Rent:              parseDecimal(it.Rent),
		Deposit:           parseDecimal(it.Deposit),
		LeaseStart:        parseDate(it.LeaseStart),
		LeaseEnd:          parseDate(it.LeaseEnd),
		Status:            entities.TenantStatus(it.Status),
		PropertyID:        it.PropertyID,
		EmergencyContacts: it.EmergencyContacts,
		IDDocumentURL:     it.IDDocumentURL,
		LeaseDocumentURL:  it.LeaseDocumentURL,
		Notes:             it.Notes,
		CreatedAt:         parseTimestamp(it.CreatedAt),
		UpdatedAt:         parseTimestamp(it.UpdatedAt),
	}
}
