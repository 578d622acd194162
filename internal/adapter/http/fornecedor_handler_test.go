package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/gin-gonic/gin"
	handlers "github.com/guih-henriqueee/agendamentos-api/internal/adapter/http"
	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/memory"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/fornecedor"
	"github.com/guih-henriqueee/agendamentos-api/internal/testutils"
	"github.com/guih-henriqueee/agendamentos-api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFornecedorRouter(t *testing.T) *gin.Engine {
	router := testutils.SetupTestRouter(t)

	service := fornecedor.NewService(
		memory.NewFornecedorRepository(),
		&cache.NoOpCache{},
		testutils.TestLogger(t),
	)
	handler := handlers.NewFornecedorHandler(service, testutils.TestLogger(t))

	router.GET("/fornecedores", handler.List)
	router.POST("/fornecedores", handler.Create)
	router.GET("/fornecedores/:id", handler.Get)
	router.PUT("/fornecedores/:id", handler.Update)
	router.DELETE("/fornecedores/:id", handler.Delete)

	return router
}

func createFornecedor(t *testing.T, router *gin.Engine, name, cnpj, contact string) map[string]interface{} {
	resp := testutils.MakeRequest(t, router, "POST", "/fornecedores", map[string]interface{}{
		"name":    name,
		"cnpj":    cnpj,
		"contact": contact,
	}, nil)
	testutils.RequireHTTPStatus(t, resp, nethttp.StatusCreated)

	var body map[string]interface{}
	testutils.ParseResponse(t, resp, &body)
	return body
}

func TestFornecedorHandler_Create(t *testing.T) {
	t.Run("returns 201 with full record", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		body := createFornecedor(t, router, "ACME", "12345678000199", "119999999")

		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "ACME", body["name"])
		assert.Equal(t, "12345678000199", body["cnpj"])
		assert.Equal(t, "119999999", body["contact"])
	})

	t.Run("duplicate cnpj is allowed", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		first := createFornecedor(t, router, "ACME", "12345678000199", "119999999")
		second := createFornecedor(t, router, "ACME Filial", "12345678000199", "118888888")

		assert.NotEqual(t, first["id"], second["id"])

		list := testutils.MakeRequest(t, router, "GET", "/fornecedores", nil, nil)
		var all []map[string]interface{}
		testutils.ParseResponse(t, list, &all)
		assert.Len(t, all, 2)
	})

	t.Run("malformed cnpj returns 400", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		resp := testutils.MakeRequest(t, router, "POST", "/fornecedores", map[string]interface{}{
			"name":    "ACME",
			"cnpj":    "123",
			"contact": "119999999",
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusBadRequest)
	})
}

func TestFornecedorHandler_Get(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		created := createFornecedor(t, router, "ACME", "12345678000199", "119999999")

		resp := testutils.MakeRequest(t, router, "GET", "/fornecedores/"+created["id"].(string), nil, nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, created["id"], body["id"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		resp := testutils.MakeRequest(t, router, "GET", "/fornecedores/missing", nil, nil)
		testutils.RequireAPIError(t, resp, nethttp.StatusNotFound, "Fornecedor not found")
	})
}

func TestFornecedorHandler_Update(t *testing.T) {
	router := setupFornecedorRouter(t)

	created := createFornecedor(t, router, "ACME", "12345678000199", "119999999")
	id := created["id"].(string)

	resp := testutils.MakeRequest(t, router, "PUT", "/fornecedores/"+id, map[string]interface{}{
		"name":    "ACME Ltda",
		"cnpj":    "99945678000199",
		"contact": "117777777",
	}, nil)

	testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

	var body map[string]interface{}
	testutils.ParseResponse(t, resp, &body)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "ACME Ltda", body["name"])
	assert.Equal(t, "99945678000199", body["cnpj"])
}

func TestFornecedorHandler_Delete(t *testing.T) {
	t.Run("returns 200 with confirmation", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		created := createFornecedor(t, router, "ACME", "12345678000199", "119999999")

		resp := testutils.MakeRequest(t, router, "DELETE", "/fornecedores/"+created["id"].(string), nil, nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		require.Equal(t, "Fornecedor deleted", body["message"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := setupFornecedorRouter(t)

		resp := testutils.MakeRequest(t, router, "DELETE", "/fornecedores/missing", nil, nil)
		testutils.RequireAPIError(t, resp, nethttp.StatusNotFound, "Fornecedor not found")
	})
}
