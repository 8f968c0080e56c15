package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/ecommerce-admin-api/docs"
)

func TestSwagger_RegistradoYValido(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))
	for _, p := range []string{"/health", "/api/sales", "/api/analytics/revenue/{period}", "/api/inventory/{product_id}"} {
		assert.Contains(t, spec.Paths, p)
	}
}
