package repository

import (
	"context"
	"errors"
	"time"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	codeIndexName                 = "code-index"
)

type includedServiceItem struct {
	ID        string  `dynamodbav:"id"`
	ServiceID string  `dynamodbav:"service_id"`
	Name      string  `dynamodbav:"name"`
	Price     float64 `dynamodbav:"price"`
}

type includedItemItem struct {
	ID          string  `dynamodbav:"id"`
	StockItemID string  `dynamodbav:"stock_item_id"`
	Name        string  `dynamodbav:"name"`
	Price       float64 `dynamodbav:"price"`
	Quantity    int     `dynamodbav:"quantity"`
	Kind        string  `dynamodbav:"kind"`
}

type serviceOrderItem struct {
	ID                 string                `dynamodbav:"id"`
	Code               string                `dynamodbav:"code"`
	VehicleID          string                `dynamodbav:"vehicle_id"`
	Status             string                `dynamodbav:"status"`
	Services           []includedServiceItem `dynamodbav:"services"`
	Items              []includedItemItem    `dynamodbav:"items"`
	BudgetTotal        *float64              `dynamodbav:"budget_total,omitempty"`
	BudgetGeneratedAt  string                `dynamodbav:"budget_generated_at,omitempty"`
	CreatedAt          string                `dynamodbav:"created_at"`
	ExecutionStartedAt string                `dynamodbav:"execution_started_at,omitempty"`
	FinalizedAt        string                `dynamodbav:"finalized_at,omitempty"`
	DeliveredAt        string                `dynamodbav:"delivered_at,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI code-index: code (string)
//
// Timestamps are stored as RFC3339Nano strings, which keeps the
// delivered-since filter a plain lexicographic comparison.
type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(codeIndexName),
		KeyConditionExpression: aws.String("#code = :code"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	o, err := r.GetByCode(ctx, code)
	if err != nil {
		return false, err
	}
	return o.ID != "", nil
}

// Save overwrites the full aggregate. Last-writer-wins: the source system
// carries no version attribute, so no conditional check on content is made
// beyond existence.
func (r *ServiceOrderDynamoRepository) Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.scan(ctx, nil, nil, nil)
}

func (r *ServiceOrderDynamoRepository) ListDeliveredSince(ctx context.Context, since time.Time) ([]entities.ServiceOrder, error) {
	filter := aws.String("#status = :status AND #delivered_at >= :since")
	names := map[string]string{
		"#status":       "status",
		"#delivered_at": "delivered_at",
	}
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusEntregue)},
		":since":  &types.AttributeValueMemberS{Value: since.UTC().Format(time.RFC3339Nano)},
	}
	return r.scan(ctx, filter, names, values)
}

func (r *ServiceOrderDynamoRepository) scan(
	ctx context.Context,
	filter *string,
	names map[string]string,
	values map[string]types.AttributeValue,
) ([]entities.ServiceOrder, error) {
	var (
		orders   []entities.ServiceOrder
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          filter,
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceOrderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:        o.ID,
		Code:      o.Code,
		VehicleID: o.VehicleID,
		Status:    string(o.Status),
		CreatedAt: o.History.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	for _, s := range o.Services {
		it.Services = append(it.Services, includedServiceItem{
			ID:        s.ID,
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
		})
	}
	for _, li := range o.Items {
		it.Items = append(it.Items, includedItemItem{
			ID:          li.ID,
			StockItemID: li.StockItemID,
			Name:        li.Name,
			Price:       li.Price,
			Quantity:    li.Quantity,
			Kind:        string(li.Kind),
		})
	}

	if o.Budget != nil {
		total := o.Budget.Total
		it.BudgetTotal = &total
		it.BudgetGeneratedAt = o.Budget.GeneratedAt.UTC().Format(time.RFC3339Nano)
	}
	it.ExecutionStartedAt = formatOptionalTime(o.History.ExecutionStartedAt)
	it.FinalizedAt = formatOptionalTime(o.History.FinalizedAt)
	it.DeliveredAt = formatOptionalTime(o.History.DeliveredAt)
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.ServiceOrder{
		ID:        it.ID,
		Code:      it.Code,
		VehicleID: it.VehicleID,
		Status:    entities.OrderStatus(it.Status),
		History: entities.HistoryTimestamps{
			CreatedAt:          createdAt,
			ExecutionStartedAt: parseOptionalTime(it.ExecutionStartedAt),
			FinalizedAt:        parseOptionalTime(it.FinalizedAt),
			DeliveredAt:        parseOptionalTime(it.DeliveredAt),
		},
	}

	for _, s := range it.Services {
		o.Services = append(o.Services, entities.IncludedService{
			ID:        s.ID,
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
		})
	}
	for _, li := range it.Items {
		o.Items = append(o.Items, entities.IncludedItem{
			ID:          li.ID,
			StockItemID: li.StockItemID,
			Name:        li.Name,
			Price:       li.Price,
			Quantity:    li.Quantity,
			Kind:        entities.ItemKind(li.Kind),
		})
	}

	if it.BudgetTotal != nil {
		generatedAt, _ := time.Parse(time.RFC3339Nano, it.BudgetGeneratedAt)
		o.Budget = &entities.Budget{Total: *it.BudgetTotal, GeneratedAt: generatedAt}
	}
	return o
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
