package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/google/uuid"
	"github.com/jsphweid/beeptable/constants"
	"github.com/jsphweid/beeptable/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func NewRecord(input string, output string, h model.Header, budget int) model.ConversionRecord {
	return model.ConversionRecord{
		Id:        uuid.New().String(),
		Input:     input,
		Output:    output,
		LenNotes:  h.LenNotes,
		TableSize: len(h.Frequencies),
		Budget:    budget,
	}
}

func conversionItem(rec model.ConversionRecord) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(rec.Id)},
		"Input":     {S: aws.String(rec.Input)},
		"Output":    {S: aws.String(rec.Output)},
		"LenNotes":  {N: aws.String(strconv.Itoa(rec.LenNotes))},
		"TableSize": {N: aws.String(strconv.Itoa(rec.TableSize))},
		"Budget":    {N: aws.String(strconv.Itoa(rec.Budget))},
	}
}

// RecordConversion stores rec in the conversion registry. Without a
// configured endpoint it does nothing.
func RecordConversion(rec model.ConversionRecord) error {
	endpoint := constants.GetRegistryEndpoint()
	if endpoint == "" {
		return nil
	}

	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return errors.Wrap(err, "could not create a new DynamoDB session")
	}

	client := dynamodb.New(session)
	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.GetRegistryTable()),
		Item:      conversionItem(rec),
	}
	if _, err := client.PutItem(input); err != nil {
		return errors.Wrap(err, "error from DynamoDB")
	}

	logrus.WithFields(logrus.Fields{"id": rec.Id, "output": rec.Output}).Debug("recorded conversion")
	return nil
}
