package repository

import (
	"context"
	"strconv"
	"time"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID                     int                     `dynamodbav:"id"`
	FirstName              string                  `dynamodbav:"first_name"`
	LastName               string                  `dynamodbav:"last_name"`
	Email                  string                  `dynamodbav:"email"`
	Phone                  string                  `dynamodbav:"phone"`
	HousingType            string                  `dynamodbav:"housing_type"`
	Surface                int                     `dynamodbav:"surface"`
	Floor                  int                     `dynamodbav:"floor"`
	Bedrooms               int                     `dynamodbav:"bedrooms"`
	LivingRooms            int                     `dynamodbav:"living_rooms"`
	Kitchens               int                     `dynamodbav:"kitchens"`
	Bathrooms              int                     `dynamodbav:"bathrooms"`
	FurnitureInventory     []string                `dynamodbav:"furniture_inventory,omitempty"`
	RoomInventory          *entities.RoomInventory `dynamodbav:"room_inventory,omitempty"`
	DepartureAddress       string                  `dynamodbav:"departure_address"`
	DepartureCity          string                  `dynamodbav:"departure_city"`
	DeparturePostal        string                  `dynamodbav:"departure_postal"`
	DepartureAccessibility string                  `dynamodbav:"departure_accessibility"`
	ArrivalAddress         string                  `dynamodbav:"arrival_address"`
	ArrivalCity            string                  `dynamodbav:"arrival_city"`
	ArrivalPostal          string                  `dynamodbav:"arrival_postal"`
	ArrivalAccessibility   string                  `dynamodbav:"arrival_accessibility"`
	MovingDate             string                  `dynamodbav:"moving_date"`
	DateFlexibility        string                  `dynamodbav:"date_flexibility"`
	TimeSlot               string                  `dynamodbav:"time_slot"`
	AdditionalServices     []string                `dynamodbav:"additional_services,omitempty"`
	BudgetRange            string                  `dynamodbav:"budget_range"`
	AdditionalComments     string                  `dynamodbav:"additional_comments"`
	CreatedAt              string                  `dynamodbav:"created_at"`
	Status                 string                  `dynamodbav:"status"`
}

// QuoteDynamoRepository persists quote requests in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Item 0 is reserved for the id sequence counter; Scan filters it out.
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	id, err := nextSequence(ctx, r.ddb, r.tableName)
	if err != nil {
		return entities.Quote{}, err
	}
	q.ID = id
	q.CreatedAt = time.Now().UTC()
	q.Status = entities.QuoteStatusPending

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id int) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#id > :zero"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": &types.AttributeValueMemberN{Value: "0"},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortNewestFirst(quotes, func(q entities.Quote) (time.Time, int) { return q.CreatedAt, q.ID })
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	furniture := make([]string, 0, len(q.FurnitureInventory))
	for _, it := range q.FurnitureInventory {
		furniture = append(furniture, string(it))
	}
	services := make([]string, 0, len(q.AdditionalServices))
	for _, s := range q.AdditionalServices {
		services = append(services, string(s))
	}
	return quoteItem{
		ID:                     q.ID,
		FirstName:              q.FirstName,
		LastName:               q.LastName,
		Email:                  q.Email,
		Phone:                  q.Phone,
		HousingType:            string(q.HousingType),
		Surface:                q.Surface,
		Floor:                  q.Floor,
		Bedrooms:               q.Bedrooms,
		LivingRooms:            q.LivingRooms,
		Kitchens:               q.Kitchens,
		Bathrooms:              q.Bathrooms,
		FurnitureInventory:     furniture,
		RoomInventory:          q.RoomInventory,
		DepartureAddress:       q.DepartureAddress,
		DepartureCity:          q.DepartureCity,
		DeparturePostal:        q.DeparturePostal,
		DepartureAccessibility: string(q.DepartureAccessibility),
		ArrivalAddress:         q.ArrivalAddress,
		ArrivalCity:            q.ArrivalCity,
		ArrivalPostal:          q.ArrivalPostal,
		ArrivalAccessibility:   string(q.ArrivalAccessibility),
		MovingDate:             q.MovingDate,
		DateFlexibility:        string(q.DateFlexibility),
		TimeSlot:               string(q.TimeSlot),
		AdditionalServices:     services,
		BudgetRange:            string(q.BudgetRange),
		AdditionalComments:     q.AdditionalComments,
		CreatedAt:              q.CreatedAt.UTC().Format(time.RFC3339Nano),
		Status:                 string(q.Status),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	furniture := make(entities.FlatInventory, 0, len(it.FurnitureInventory))
	for _, s := range it.FurnitureInventory {
		furniture = append(furniture, entities.FurnitureItem(s))
	}
	services := make([]entities.AdditionalService, 0, len(it.AdditionalServices))
	for _, s := range it.AdditionalServices {
		services = append(services, entities.AdditionalService(s))
	}
	return entities.Quote{
		ID:                     it.ID,
		FirstName:              it.FirstName,
		LastName:               it.LastName,
		Email:                  it.Email,
		Phone:                  it.Phone,
		HousingType:            entities.HousingType(it.HousingType),
		Surface:                it.Surface,
		Floor:                  it.Floor,
		Bedrooms:               it.Bedrooms,
		LivingRooms:            it.LivingRooms,
		Kitchens:               it.Kitchens,
		Bathrooms:              it.Bathrooms,
		FurnitureInventory:     furniture,
		RoomInventory:          it.RoomInventory,
		DepartureAddress:       it.DepartureAddress,
		DepartureCity:          it.DepartureCity,
		DeparturePostal:        it.DeparturePostal,
		DepartureAccessibility: entities.Accessibility(it.DepartureAccessibility),
		ArrivalAddress:         it.ArrivalAddress,
		ArrivalCity:            it.ArrivalCity,
		ArrivalPostal:          it.ArrivalPostal,
		ArrivalAccessibility:   entities.Accessibility(it.ArrivalAccessibility),
		MovingDate:             it.MovingDate,
		DateFlexibility:        entities.DateFlexibility(it.DateFlexibility),
		TimeSlot:               entities.TimeSlot(it.TimeSlot),
		AdditionalServices:     services,
		BudgetRange:            entities.BudgetRange(it.BudgetRange),
		AdditionalComments:     it.AdditionalComments,
		CreatedAt:              createdAt,
		Status:                 entities.QuoteStatus(it.Status),
	}
}
