package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type Asset struct {
	Token   string `bson:"token"`
	TokenId string `bson:"tokenId"`
}

type holding struct {
	Asset    `bson:",inline"`
	Owner    string `bson:"owner,omitempty"`
	Quantity *int   `bson:"quantity,omitempty"`
	Note     string `bson:"-"`
	hidden   string
}

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)
	zero := 0

	m, err := MakeBsonM(&holding{
		Asset:    Asset{Token: "0xabc", TokenId: "1"},
		Quantity: &zero,
		Note:     "skipped",
		hidden:   "skipped",
	})
	req.NoError(err)
	req.Equal(bson.M{
		"token":    "0xabc",
		"tokenId":  "1",
		"quantity": 0,
	}, m)

	m, err = MakeBsonM(holding{Owner: "0xdef"})
	req.NoError(err)
	req.Equal(bson.M{"owner": "0xdef"}, m)
}

func TestMakeBsonMRejectsNonStruct(t *testing.T) {
	_, err := MakeBsonM("token")
	require.Equal(t, ErrNotStruct, err)
}
