package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/gin-gonic/gin"
	handlers "github.com/guih-henriqueee/agendamentos-api/internal/adapter/http"
	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/memory"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/agendamento"
	"github.com/guih-henriqueee/agendamentos-api/internal/testutils"
	"github.com/guih-henriqueee/agendamentos-api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAgendamentoRouter(t *testing.T) *gin.Engine {
	router := testutils.SetupTestRouter(t)

	service := agendamento.NewService(
		memory.NewAgendamentoRepository(),
		&cache.NoOpCache{},
		testutils.TestLogger(t),
	)
	handler := handlers.NewAgendamentoHandler(service, testutils.TestLogger(t))

	router.GET("/agendamentos", handler.List)
	router.POST("/agendamentos", handler.Create)
	router.PUT("/agendamentos/:id", handler.Update)
	router.DELETE("/agendamentos/:id", handler.Delete)

	return router
}

func agendamentoBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Compra de peças",
		"price":       1500.50,
		"description": "Reposição de estoque",
		"quantity":    10,
		"dataEntrega": "2024-06-01T00:00:00Z",
		"xml":         "<nota/>",
		"commits":     "pedido inicial",
		"status":      "pendente",
		"userCreated": map[string]interface{}{
			"id":    "u1",
			"name":  "Ana",
			"email": "ana@example.com",
		},
		"fornecedor": map[string]interface{}{
			"id":      "f1",
			"name":    "ACME",
			"contact": "119999999",
		},
	}
}

func TestAgendamentoHandler_Create(t *testing.T) {
	t.Run("returns 201 with frozen snapshots", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		resp := testutils.MakeRequest(t, router, "POST", "/agendamentos", agendamentoBody(), nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusCreated)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)

		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "pendente", body["status"])

		userCreated := body["userCreated"].(map[string]interface{})
		userUpdated := body["userUpdated"].(map[string]interface{})
		assert.Equal(t, userCreated, userUpdated)
		assert.Equal(t, "u1", userCreated["id"])

		// Campos achatados do criador
		assert.Equal(t, "u1", body["userId"])
		assert.Equal(t, "Ana", body["userName"])
		assert.Equal(t, "ana@example.com", body["userEmail"])
	})

	t.Run("invalid body returns 400", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		body := agendamentoBody()
		body["price"] = -1

		resp := testutils.MakeRequest(t, router, "POST", "/agendamentos", body, nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusBadRequest)
	})
}

func TestAgendamentoHandler_Update(t *testing.T) {
	t.Run("returns 200 with partial view", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		created := testutils.MakeRequest(t, router, "POST", "/agendamentos", agendamentoBody(), nil)
		var createdBody map[string]interface{}
		testutils.ParseResponse(t, created, &createdBody)
		id := createdBody["id"].(string)

		resp := testutils.MakeRequest(t, router, "PUT", "/agendamentos/"+id, map[string]interface{}{
			"name":        "Compra urgente",
			"price":       2000,
			"description": "Reposição ampliada",
			"quantity":    20,
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, id, body["id"])
		assert.Equal(t, "Compra urgente", body["name"])
		assert.Equal(t, 2000.0, body["price"])
		assert.NotContains(t, body, "userCreated")
	})

	t.Run("snapshots survive update", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		created := testutils.MakeRequest(t, router, "POST", "/agendamentos", agendamentoBody(), nil)
		var createdBody map[string]interface{}
		testutils.ParseResponse(t, created, &createdBody)
		id := createdBody["id"].(string)

		update := testutils.MakeRequest(t, router, "PUT", "/agendamentos/"+id, map[string]interface{}{
			"name":        "Compra urgente",
			"price":       2000,
			"description": "Reposição ampliada",
			"quantity":    20,
		}, nil)
		testutils.RequireHTTPStatus(t, update, nethttp.StatusOK)

		list := testutils.MakeRequest(t, router, "GET", "/agendamentos", nil, nil)
		var all []map[string]interface{}
		testutils.ParseResponse(t, list, &all)
		require.Len(t, all, 1)

		// Recortes, status e xml permanecem como na criação
		assert.Equal(t, "pendente", all[0]["status"])
		assert.Equal(t, "<nota/>", all[0]["xml"])
		userUpdated := all[0]["userUpdated"].(map[string]interface{})
		assert.Equal(t, "u1", userUpdated["id"])
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		resp := testutils.MakeRequest(t, router, "PUT", "/agendamentos/missing", map[string]interface{}{
			"name":        "Compra",
			"price":       1,
			"description": "abc",
			"quantity":    1,
		}, nil)

		testutils.RequireAPIError(t, resp, nethttp.StatusNotFound, "Agendamento not found")
	})
}

func TestAgendamentoHandler_Delete(t *testing.T) {
	t.Run("returns 204", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		created := testutils.MakeRequest(t, router, "POST", "/agendamentos", agendamentoBody(), nil)
		var createdBody map[string]interface{}
		testutils.ParseResponse(t, created, &createdBody)

		resp := testutils.MakeRequest(t, router, "DELETE", "/agendamentos/"+createdBody["id"].(string), nil, nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusNoContent)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := setupAgendamentoRouter(t)

		resp := testutils.MakeRequest(t, router, "DELETE", "/agendamentos/missing", nil, nil)
		testutils.RequireAPIError(t, resp, nethttp.StatusNotFound, "Agendamento not found")
	})
}
