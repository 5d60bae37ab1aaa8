package db

import (
	"strconv"

	"github.com/beatmaking/rollsheet/constants"
	"github.com/beatmaking/rollsheet/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetSongMetadatas looks up title-block metadata for song names. Callers are
// expected to check constants.GetMetadataEndpoint() first; without a
// configured endpoint there is nothing to query.
func GetSongMetadatas(songs []string) map[string]model.SongMetadata {
	if len(songs) > 10 {
		panic("Not supposed to pass in more than 10 songs!")
	}

	res := make(map[string]model.SongMetadata)

	if len(songs) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, song := range songs {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(song),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetMetadataEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"rollsheet-metadata": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses["rollsheet-metadata"] {
		var s model.SongMetadata
		if v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		s.Artist = *v["Artist"].S
		s.Release = *v["Release"].S
		s.Title = *v["Title"].S
		res[*v["PK"].S] = s
	}

	return res
}
