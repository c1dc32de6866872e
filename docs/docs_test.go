package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath string `json:"basePath"`
		Paths    map[string]map[string]struct {
			Parameters []struct {
				Name     string `json:"name"`
				In       string `json:"in"`
				Required bool   `json:"required"`
			} `json:"parameters"`
			Responses map[string]json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/", doc.BasePath)

	op, ok := doc.Paths["/api/transcript"]["get"]
	require.True(t, ok)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "videoId", op.Parameters[0].Name)
	assert.Equal(t, "query", op.Parameters[0].In)
	assert.True(t, op.Parameters[0].Required)
	for _, code := range []string{"200", "400", "404", "500"} {
		assert.Contains(t, op.Responses, code)
	}

	_, ok = doc.Paths["/health"]["get"]
	assert.True(t, ok)
}
