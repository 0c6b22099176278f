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

const defaultContactsTableName = "contacts"

type contactItem struct {
	ID          int    `dynamodbav:"id"`
	FirstName   string `dynamodbav:"first_name"`
	LastName    string `dynamodbav:"last_name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	ServiceType string `dynamodbav:"service_type"`
	Message     string `dynamodbav:"message"`
	CreatedAt   string `dynamodbav:"created_at"`
	Status      string `dynamodbav:"status"`
}

// ContactDynamoRepository persists contact messages in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Item 0 is reserved for the id sequence counter; Scan filters it out.
type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	id, err := nextSequence(ctx, r.ddb, r.tableName)
	if err != nil {
		return entities.Contact{}, err
	}
	c.ID = id
	c.CreatedAt = time.Now().UTC()
	c.Status = entities.ContactStatusUnread

	av, err := attributevalue.MarshalMap(toContactItem(c))
	if err != nil {
		return entities.Contact{}, err
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
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id int) (entities.Contact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contact{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contact{}, nil
	}

	var it contactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contact{}, err
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) List(ctx context.Context) ([]entities.Contact, error) {
	var contacts []entities.Contact
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
			var it contactItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			contacts = append(contacts, fromContactItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sortNewestFirst(contacts, func(c entities.Contact) (time.Time, int) { return c.CreatedAt, c.ID })
	return contacts, nil
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		ServiceType: string(c.ServiceType),
		Message:     c.Message,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
		Status:      string(c.Status),
	}
}

func fromContactItem(it contactItem) entities.Contact {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Contact{
		ID:          it.ID,
		FirstName:   it.FirstName,
		LastName:    it.LastName,
		Email:       it.Email,
		Phone:       it.Phone,
		ServiceType: entities.ServiceType(it.ServiceType),
		Message:     it.Message,
		CreatedAt:   createdAt,
		Status:      entities.ContactStatus(it.Status),
	}
}
