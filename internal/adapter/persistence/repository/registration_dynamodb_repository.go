package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"eventos_xpto/internal/domain/entities"
	"eventos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRegistrationsTableName = "registrations"
	registrationsOrderIDIndex     = "order_id-index"
)

type registrationItem struct {
	ReferenceID   string `dynamodbav:"reference_id"`
	FullName      string `dynamodbav:"full_name"`
	Email         string `dynamodbav:"email"`
	Phone         string `dynamodbav:"phone"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	Status        string `dynamodbav:"status"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	FailureReason string `dynamodbav:"failure_reason,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
	PaidAt        string `dynamodbav:"paid_at,omitempty"`
	FailedAt      string `dynamodbav:"failed_at,omitempty"`
}

// RegistrationDynamoRepository persists Registration entities in DynamoDB.
//
// Table requirements:
//   - PK: reference_id (string)
//   - GSI: order_id-index (PK: order_id)
//
// The status transitions (AttachOrder, MarkPaid, MarkFailed) are conditional
// UpdateItem calls keyed on the prior status, which makes each transition a
// serializable compare-and-set per reference id.

type RegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRegistrationRepository = (*RegistrationDynamoRepository)(nil)

func NewRegistrationDynamoRepository(ddb *dynamodb.Client) *RegistrationDynamoRepository {
	return &RegistrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REGISTRATIONS_TABLE", defaultRegistrationsTableName),
	}
}

func (r *RegistrationDynamoRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	av, err := attributevalue.MarshalMap(toRegistrationItem(reg))
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "reference_id",
		},
	})
	if err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationDynamoRepository) GetByReferenceID(ctx context.Context, referenceID string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_id": &types.AttributeValueMemberS{Value: referenceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

func (r *RegistrationDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Registration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(registrationsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Items) == 0 {
		return entities.Registration{}, nil
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

func (r *RegistrationDynamoRepository) AttachOrder(ctx context.Context, referenceID, orderID string) (entities.Registration, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_id": &types.AttributeValueMemberS{Value: referenceID},
		},
		ConditionExpression: aws.String("attribute_exists(#rid) AND #status = :created"),
		UpdateExpression:    aws.String("SET #status = :order_created, #order_id = :order_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#rid":        "reference_id",
			"#status":     "status",
			"#order_id":   "order_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":created":       &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusCreated)},
			":order_created": &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusOrderCreated)},
			":order_id":      &types.AttributeValueMemberS{Value: orderID},
			":updated_at":    &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Not in CREATED anymore; hand back what is stored.
			return r.GetByReferenceID(ctx, referenceID)
		}
		return entities.Registration{}, err
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

func (r *RegistrationDynamoRepository) MarkPaid(ctx context.Context, referenceID, transactionID string, paidAt time.Time) (entities.Registration, bool, error) {
	return r.transition(ctx, referenceID,
		"SET #status = :to, #transaction_id = :txn, #paid_at = :at, #updated_at = :at",
		map[string]string{
			"#transaction_id": "transaction_id",
			"#paid_at":        "paid_at",
		},
		map[string]types.AttributeValue{
			":to":  &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusPaid)},
			":txn": &types.AttributeValueMemberS{Value: transactionID},
			":at":  &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		})
}

func (r *RegistrationDynamoRepository) MarkFailed(ctx context.Context, referenceID, reason string, failedAt time.Time) (entities.Registration, bool, error) {
	return r.transition(ctx, referenceID,
		"SET #status = :to, #failure_reason = :reason, #failed_at = :at, #updated_at = :at",
		map[string]string{
			"#failure_reason": "failure_reason",
			"#failed_at":      "failed_at",
		},
		map[string]types.AttributeValue{
			":to":     &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusFailed)},
			":reason": &types.AttributeValueMemberS{Value: reason},
			":at":     &types.AttributeValueMemberS{Value: failedAt.UTC().Format(time.RFC3339Nano)},
		})
}

// transition applies a terminal status write conditioned on the record still
// being in ORDER_CREATED. A failed condition is not an error: the current
// record is fetched and returned with transitioned=false so callers can
// distinguish duplicate confirmations from stale ones.
func (r *RegistrationDynamoRepository) transition(
	ctx context.Context,
	referenceID string,
	updateExpr string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.Registration, bool, error) {
	allNames := map[string]string{
		"#rid":        "reference_id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	for k, v := range names {
		allNames[k] = v
	}
	values[":from"] = &types.AttributeValueMemberS{Value: string(entities.RegistrationStatusOrderCreated)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_id": &types.AttributeValueMemberS{Value: referenceID},
		},
		ConditionExpression:       aws.String("attribute_exists(#rid) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  allNames,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			current, gerr := r.GetByReferenceID(ctx, referenceID)
			if gerr != nil {
				return entities.Registration{}, false, gerr
			}
			return current, false, nil
		}
		return entities.Registration{}, false, err
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Registration{}, false, err
	}
	return fromRegistrationItem(it), true, nil
}

func (r *RegistrationDynamoRepository) List(ctx context.Context) ([]entities.Registration, error) {
	regs := make([]entities.Registration, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it registrationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			regs = append(regs, fromRegistrationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return regs, nil
}

func toRegistrationItem(reg entities.Registration) registrationItem {
	it := registrationItem{
		ReferenceID:   reg.ReferenceID,
		FullName:      reg.FullName,
		Email:         reg.Email,
		Phone:         reg.Phone,
		OrderID:       reg.OrderID,
		Status:        string(reg.Status),
		TransactionID: reg.TransactionID,
		FailureReason: reg.FailureReason,
		CreatedAt:     reg.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     reg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if reg.PaidAt != nil {
		it.PaidAt = reg.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	if reg.FailedAt != nil {
		it.FailedAt = reg.FailedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRegistrationItem(it registrationItem) entities.Registration {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	reg := entities.Registration{
		ReferenceID:   it.ReferenceID,
		FullName:      it.FullName,
		Email:         it.Email,
		Phone:         it.Phone,
		OrderID:       it.OrderID,
		Status:        entities.RegistrationStatus(it.Status),
		TransactionID: it.TransactionID,
		FailureReason: it.FailureReason,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			reg.PaidAt = &t
		}
	}
	if it.FailedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.FailedAt); err == nil {
			reg.FailedAt = &t
		}
	}
	return reg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
