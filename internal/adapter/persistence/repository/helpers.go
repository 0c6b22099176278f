package repository

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// counterKey is the reserved partition key of the per-table sequence item.
// Record ids start at 1, so the counter never collides with data.
const counterKey = 0

// nextSequence atomically increments and returns the table's id counter.
// DynamoDB has no SERIAL column; an ADD update on a dedicated item gives the
// same monotonically increasing integer ids the relational store produces.
func nextSequence(ctx context.Context, ddb *dynamodb.Client, tableName string) (int, error) {
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(counterKey)},
		},
		UpdateExpression: aws.String("ADD seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		Seq int `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
