package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashrajoria/classroom-shop/loyalty"
)

func TestLoyaltyRequest_Items(t *testing.T) {
	var req LoyaltyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"cart":[
		{"type":"premium","price":30},
		{"type":"standard","price":"40"},
		{"type":"standard"},
		null,
		7,
		{"type":"standard","price":-3}
	]}`), &req))

	items, ok := req.Items()
	require.True(t, ok)
	require.Len(t, items, 6)
	assert.Equal(t, "premium", items[0].Type)
	require.NotNil(t, items[0].Price)
	assert.Equal(t, "30", items[0].Price.String())
	assert.Nil(t, items[1].Price)
	assert.Nil(t, items[2].Price)
	assert.Nil(t, items[3].Price)
	assert.Nil(t, items[4].Price)
	assert.Equal(t, 6, loyalty.CalculatePoints(items))
}

func TestLoyaltyRequest_NotArray(t *testing.T) {
	for _, body := range []string{`{}`, `{"cart":null}`, `{"cart":"items"}`, `{"cart":{"price":10}}`} {
		var req LoyaltyRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		_, ok := req.Items()
		assert.False(t, ok, body)
	}
}
