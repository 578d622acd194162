package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/gin-gonic/gin"
	handlers "github.com/guih-henriqueee/agendamentos-api/internal/adapter/http"
	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/memory"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/funcionario"
	"github.com/guih-henriqueee/agendamentos-api/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func setupFuncionarioRouter(t *testing.T) *gin.Engine {
	router := testutils.SetupTestRouter(t)

	service := funcionario.NewService(
		memory.NewFuncionarioRepository(),
		testutils.TestLogger(t),
	)
	handler := handlers.NewFuncionarioHandler(service, testutils.TestLogger(t))

	router.GET("/funcionarios", handler.List)
	router.POST("/funcionarios", handler.Create)

	return router
}

func TestFuncionarioHandler_Create(t *testing.T) {
	t.Run("returns 201 with generated id", func(t *testing.T) {
		router := setupFuncionarioRouter(t)

		resp := testutils.MakeRequest(t, router, "POST", "/funcionarios", map[string]interface{}{
			"name":     "Carlos",
			"document": "98765432100",
			"salary":   4200.50,
			"manager":  "12345678901",
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusCreated)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "Carlos", body["name"])
		assert.Equal(t, "98765432100", body["document"])
		assert.Equal(t, 4200.50, body["salary"])
	})

	t.Run("malformed document returns 400", func(t *testing.T) {
		router := setupFuncionarioRouter(t)

		resp := testutils.MakeRequest(t, router, "POST", "/funcionarios", map[string]interface{}{
			"name":     "Carlos",
			"document": "abc",
			"salary":   4200.50,
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusBadRequest)
	})

	t.Run("negative salary returns 400", func(t *testing.T) {
		router := setupFuncionarioRouter(t)

		resp := testutils.MakeRequest(t, router, "POST", "/funcionarios", map[string]interface{}{
			"name":     "Carlos",
			"document": "98765432100",
			"salary":   -1,
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusBadRequest)
	})
}

func TestFuncionarioHandler_List(t *testing.T) {
	router := setupFuncionarioRouter(t)

	for _, name := range []string{"Carlos", "Beatriz"} {
		resp := testutils.MakeRequest(t, router, "POST", "/funcionarios", map[string]interface{}{
			"name":     name,
			"document": "98765432100",
			"salary":   3000.0,
		}, nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusCreated)
	}

	resp := testutils.MakeRequest(t, router, "GET", "/funcionarios", nil, nil)
	testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

	var all []map[string]interface{}
	testutils.ParseResponse(t, resp, &all)
	assert.Len(t, all, 2)
	assert.Equal(t, "Carlos", all[0]["name"])
	assert.Equal(t, "Beatriz", all[1]["name"])
}
