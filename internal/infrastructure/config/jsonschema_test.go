package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	doc := gjson.ParseBytes(data)
	assert.Equal(t, "Termify Configuration", doc.Get("title").String())
	assert.True(t, doc.Get("properties.layout.properties.drop_center_fraction").Exists())

	var stores []string
	for _, v := range doc.Get("properties.layout.properties.store.enum").Array() {
		stores = append(stores, v.String())
	}
	assert.ElementsMatch(t, []string{"local", "remote"}, stores)
}
