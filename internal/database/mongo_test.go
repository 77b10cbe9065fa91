package database

import (
	"testing"

	"shoestock/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// The upsert filter must address the field name the shoe is stored under.
func TestCodeFilter_MatchesDocumentField(t *testing.T) {
	shoe := models.Shoe{Country: "UK", Code: "ABC12345", Product: "Runner", Cost: 500, Quantity: 10, Sale: true}

	data, err := bson.Marshal(shoe)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(data, &doc))

	for key, value := range CodeFilter(shoe.Code) {
		assert.Equal(t, value, doc[key])
	}
	assert.Equal(t, true, doc["sale"])
	assert.EqualValues(t, 500, doc["cost"])
}
