package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsTenantIDIndex    = "tenant_id-index"
	paymentsStatusIndex      = "status-index"
)

type paymentItem struct {
	ID            string `dynamodbav:"id"`
	TenantID      string `dynamodbav:"tenant_id,omitempty"`
	PropertyID    string `dynamodbav:"property_id,omitempty"`
	Amount        string `dynamodbav:"amount"`
	DueDate       string `dynamodbav:"due_date,omitempty"`
	PaymentMethod string `dynamodbav:"payment_method,omitempty"`
	Status        string `dynamodbav:"status"`
	PaidDate      string `dynamodbav:"paid_date,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`

	MoMoFlow                   string `dynamodbav:"momo_flow,omitempty"`
	MoMoReferenceID            string `dynamodbav:"momo_reference_id,omitempty"`
	MoMoExternalID             string `dynamodbav:"momo_external_id,omitempty"`
	MoMoInvoiceStatus          string `dynamodbav:"momo_invoice_status,omitempty"`
	MoMoRequestStatus          string `dynamodbav:"momo_request_status,omitempty"`
	MoMoErrorCode              string `dynamodbav:"momo_error_code,omitempty"`
	MoMoErrorMessage           string `dynamodbav:"momo_error_message,omitempty"`
	MoMoFinancialTransactionID string `dynamodbav:"momo_financial_transaction_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//   - GSI: status-index (PK: status)

type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		now:       time.Now,
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	raw, err := getItem(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(raw) == 0 {
		return entities.Payment{}, nil
	}
	return unmarshalPayment(raw)
}

func (r *PaymentDynamoRepository) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	var (
		raws []map[string]types.AttributeValue
		err  error
	)
	switch {
	case filter.Status != "":
		raws, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
			},
		})
	case filter.TenantID != "":
		raws, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(paymentsTenantIDIndex),
			KeyConditionExpression: aws.String("tenant_id = :tid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid": &types.AttributeValueMemberS{Value: filter.TenantID},
			},
		})
	default:
		raws, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(raws))
	for _, raw := range raws {
		p, err := unmarshalPayment(raw)
		if err != nil {
			return nil, err
		}
		if filter.TenantID != "" && p.TenantID != filter.TenantID {
			continue
		}
		items = append(items, p)
	}
	return items, nil
}

// Update writes only the attributes set in upd, leaving provider attributes as
// stored. Empty optional values remove the attribute.
func (r *PaymentDynamoRepository) Update(ctx context.Context, id string, upd interfaces.PaymentUpdate) (entities.Payment, error) {
	updatedAt := upd.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}
	sets := []string{"#updated_at = :updated_at"}
	var removes []string
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTimestamp(updatedAt)},
	}
	write := func(attr, value string) {
		names["#"+attr] = attr
		if value == "" {
			removes = append(removes, "#"+attr)
			return
		}
		sets = append(sets, "#"+attr+" = :"+attr)
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}

	if upd.TenantID != nil {
		write("tenant_id", *upd.TenantID)
	}
	if upd.PropertyID != nil {
		write("property_id", *upd.PropertyID)
	}
	if upd.Amount != nil {
		write("amount", upd.Amount.String())
	}
	if upd.DueDate != nil {
		write("due_date", formatDate(upd.DueDate))
	}
	if upd.PaymentMethod != nil {
		write("payment_method", string(*upd.PaymentMethod))
	}
	if upd.Status != nil {
		write("status", string(*upd.Status))
	}
	if upd.PaidDate != nil {
		write("paid_date", formatDate(upd.PaidDate))
	}
	if upd.Notes != nil {
		write("notes", *upd.Notes)
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	condition := ""
	if upd.ExpectedStatus != "" {
		names["#status"] = "status"
		values[":expected_status"] = &types.AttributeValueMemberS{Value: string(upd.ExpectedStatus)}
		condition = "#status = :expected_status"
	}

	attrs, err := updateItem(ctx, r.ddb, r.tableName, id, expr, condition, values, names)
	if err != nil {
		if old, ok := conditionFailedItem(err); ok {
			if len(old) == 0 {
				return entities.Payment{}, nil
			}
			return entities.Payment{}, interfaces.ErrStaleStatus
		}
		return entities.Payment{}, err
	}
	return unmarshalPayment(attrs)
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func (r *PaymentDynamoRepository) LinkProvider(ctx context.Context, id string, link interfaces.ProviderLink) (entities.Payment, error) {
	now := formatTimestamp(r.now())
	names := map[string]string{
		"#flow":       "momo_flow",
		"#ref":        "momo_reference_id",
		"#ext":        "momo_external_id",
		"#raw":        rawStatusAttribute(link.Flow),
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":flow":       &types.AttributeValueMemberS{Value: string(link.Flow)},
		":ref":        &types.AttributeValueMemberS{Value: link.ReferenceID},
		":ext":        &types.AttributeValueMemberS{Value: link.ExternalID},
		":raw":        &types.AttributeValueMemberS{Value: link.RawStatus},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":empty":      &types.AttributeValueMemberS{Value: ""},
	}

	attrs, err := updateItem(ctx, r.ddb, r.tableName, id,
		"SET #flow = :flow, #ref = :ref, #ext = :ext, #raw = :raw, #updated_at = :updated_at",
		"(attribute_not_exists(#ref) OR #ref = :empty)",
		values, names)
	if err != nil {
		if isConditionFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyLinked
		}
		return entities.Payment{}, err
	}
	return unmarshalPayment(attrs)
}

func (r *PaymentDynamoRepository) ApplyReconciliation(
	ctx context.Context,
	id string,
	flow entities.MoMoFlow,
	rec entities.Reconciliation,
	allowedFrom []entities.PaymentStatus,
) (entities.Payment, error) {
	if len(allowedFrom) == 0 {
		return entities.Payment{}, fmt.Errorf("apply reconciliation: no allowed source status")
	}
	now := formatTimestamp(r.now())

	sets := []string{"#status = :status", "#raw = :raw", "#updated_at = :updated_at"}
	names := map[string]string{
		"#status":     "status",
		"#raw":        rawStatusAttribute(flow),
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(rec.Status)},
		":raw":        &types.AttributeValueMemberS{Value: rec.RawStatus},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if rec.PaidDate != nil {
		sets = append(sets, "#paid_date = :paid_date")
		names["#paid_date"] = "paid_date"
		values[":paid_date"] = &types.AttributeValueMemberS{Value: formatDate(rec.PaidDate)}
	}
	if rec.FinancialTransactionID != "" {
		sets = append(sets, "#ftx = :ftx")
		names["#ftx"] = "momo_financial_transaction_id"
		values[":ftx"] = &types.AttributeValueMemberS{Value: rec.FinancialTransactionID}
	}
	if rec.ErrorCode != "" {
		sets = append(sets, "#err_code = :err_code")
		names["#err_code"] = "momo_error_code"
		values[":err_code"] = &types.AttributeValueMemberS{Value: rec.ErrorCode}
	}
	if rec.ErrorMessage != "" {
		sets = append(sets, "#err_msg = :err_msg")
		names["#err_msg"] = "momo_error_message"
		values[":err_msg"] = &types.AttributeValueMemberS{Value: rec.ErrorMessage}
	}

	placeholders := make([]string, 0, len(allowedFrom))
	for i, s := range allowedFrom {
		key := fmt.Sprintf(":from%d", i)
		placeholders = append(placeholders, key)
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
	}

	attrs, err := updateItem(ctx, r.ddb, r.tableName, id,
		"SET "+strings.Join(sets, ", "),
		"#status IN ("+strings.Join(placeholders, ", ")+")",
		values, names)
	if err != nil {
		if isConditionFailed(err) {
			return entities.Payment{}, interfaces.ErrStaleStatus
		}
		return entities.Payment{}, err
	}
	return unmarshalPayment(attrs)
}

func rawStatusAttribute(flow entities.MoMoFlow) string {
	if flow == entities.MoMoFlowRequestToPay {
		return "momo_request_status"
	}
	return "momo_invoice_status"
}

func unmarshalPayment(raw map[string]types.AttributeValue) (entities.Payment, error) {
	var it paymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	due := p.DueDate
	return paymentItem{
		ID:                         p.ID,
		TenantID:                   p.TenantID,
		PropertyID:                 p.PropertyID,
		Amount:                     p.Amount.String(),
		DueDate:                    formatDate(&due),
		PaymentMethod:              string(p.PaymentMethod),
		Status:                     string(p.Status),
		PaidDate:                   formatDate(p.PaidDate),
		Notes:                      p.Notes,
		MoMoFlow:                   string(p.MoMoFlow),
		MoMoReferenceID:            p.MoMoReferenceID,
		MoMoExternalID:             p.MoMoExternalID,
		MoMoInvoiceStatus:          p.MoMoInvoiceStatus,
		MoMoRequestStatus:          p.MoMoRequestStatus,
		MoMoErrorCode:              p.MoMoErrorCode,
		MoMoErrorMessage:           p.MoMoErrorMessage,
		MoMoFinancialTransactionID: p.MoMoFinancialTransactionID,
		CreatedAt:                  formatTimestamp(p.CreatedAt),
		UpdatedAt:                  formatTimestamp(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                         it.ID,
		TenantID:                   it.TenantID,
		PropertyID:                 it.PropertyID,
		Amount:                     parseDecimal(it.Amount),
		PaymentMethod:              entities.PaymentMethod(it.PaymentMethod),
		Status:                     entities.PaymentStatus(it.Status),
		PaidDate:                   parseDate(it.PaidDate),
		Notes:                      it.Notes,
		MoMoFlow:                   entities.MoMoFlow(it.MoMoFlow),
		MoMoReferenceID:            it.MoMoReferenceID,
		MoMoExternalID:             it.MoMoExternalID,
		MoMoInvoiceStatus:          it.MoMoInvoiceStatus,
		MoMoRequestStatus:          it.MoMoRequestStatus,
		MoMoErrorCode:              it.MoMoErrorCode,
		MoMoErrorMessage:           it.MoMoErrorMessage,
		MoMoFinancialTransactionID: it.MoMoFinancialTransactionID,
		CreatedAt:                  parseTimestamp(it.CreatedAt),
		UpdatedAt:                  parseTimestamp(it.UpdatedAt),
	}
	if due := parseDate(it.DueDate); due != nil {
		p.DueDate = *due
	}
	return p
}
