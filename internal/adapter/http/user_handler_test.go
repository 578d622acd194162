package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/gin-gonic/gin"
	handlers "github.com/guih-henriqueee/agendamentos-api/internal/adapter/http"
	"github.com/guih-henriqueee/agendamentos-api/internal/adapter/memory"
	"github.com/guih-henriqueee/agendamentos-api/internal/app/user"
	"github.com/guih-henriqueee/agendamentos-api/internal/auth"
	"github.com/guih-henriqueee/agendamentos-api/internal/testutils"
	"github.com/guih-henriqueee/agendamentos-api/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserRouter(t *testing.T) *gin.Engine {
	router := testutils.SetupTestRouter(t)

	service := user.NewService(
		memory.NewUserRepository(),
		auth.NewCodec(),
		&cache.NoOpCache{},
		testutils.TestLogger(t),
		false,
	)
	handler := handlers.NewUserHandler(service, testutils.TestLogger(t))
	authHandler := handlers.NewAuthHandler(service, testutils.TestLogger(t))

	router.GET("/users", handler.List)
	router.POST("/users", handler.Create)
	router.PUT("/users/:id", handler.Update)
	router.DELETE("/users/:id", handler.Delete)
	router.POST("/auth/validate", authHandler.Validate)

	return router
}

func createUser(t *testing.T, router *gin.Engine, name, email, cpf string) map[string]interface{} {
	resp := testutils.MakeRequest(t, router, "POST", "/users", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret1",
		"cpf":      cpf,
	}, nil)
	testutils.RequireHTTPStatus(t, resp, nethttp.StatusCreated)

	var body map[string]interface{}
	testutils.ParseResponse(t, resp, &body)
	return body
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("returns 201 with token", func(t *testing.T) {
		router := setupUserRouter(t)

		body := createUser(t, router, "Ana", "ana@example.com", "12345678901")

		assert.NotEmpty(t, body["id"])
		assert.Equal(t, "Ana", body["name"])
		assert.Equal(t, "ana@example.com", body["email"])
		assert.NotEmpty(t, body["token"])

		// Senha e CPF não aparecem na resposta
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "cpf")
	})

	t.Run("duplicate cpf returns 400", func(t *testing.T) {
		router := setupUserRouter(t)

		createUser(t, router, "Ana", "ana@example.com", "12345678901")

		resp := testutils.MakeRequest(t, router, "POST", "/users", map[string]interface{}{
			"name":     "Outra Ana",
			"email":    "outra@example.com",
			"password": "secret1",
			"cpf":      "12345678901",
		}, nil)

		testutils.RequireAPIError(t, resp, nethttp.StatusBadRequest, "CPF already exists")
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		router := setupUserRouter(t)

		createUser(t, router, "Ana", "ana@example.com", "12345678901")

		resp := testutils.MakeRequest(t, router, "POST", "/users", map[string]interface{}{
			"name":     "Outra Ana",
			"email":    "ana@example.com",
			"password": "secret1",
			"cpf":      "99999999999",
		}, nil)

		testutils.RequireAPIError(t, resp, nethttp.StatusBadRequest, "Email already exists")
	})

	t.Run("invalid body returns 400", func(t *testing.T) {
		router := setupUserRouter(t)

		resp := testutils.MakeRequest(t, router, "POST", "/users", map[string]interface{}{
			"name":     "An",
			"email":    "not-an-email",
			"password": "123",
			"cpf":      "123",
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusBadRequest)
	})
}

func TestUserHandler_List(t *testing.T) {
	router := setupUserRouter(t)

	createUser(t, router, "Ana", "ana@example.com", "12345678901")
	createUser(t, router, "Bruno", "bruno@example.com", "22345678901")

	resp := testutils.MakeRequest(t, router, "GET", "/users", nil, nil)
	testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)
	testutils.RequireJSONContentType(t, resp)

	var body []map[string]interface{}
	testutils.ParseResponse(t, resp, &body)

	require.Len(t, body, 2)
	assert.Equal(t, "Ana", body[0]["name"])
	assert.Equal(t, "Bruno", body[1]["name"])
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("returns 200 with public view", func(t *testing.T) {
		router := setupUserRouter(t)

		created := createUser(t, router, "Ana", "ana@example.com", "12345678901")
		id := created["id"].(string)

		resp := testutils.MakeRequest(t, router, "PUT", "/users/"+id, map[string]interface{}{
			"name":     "Ana Maria",
			"email":    "ana.maria@example.com",
			"password": "newsecret",
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, id, body["id"])
		assert.Equal(t, "Ana Maria", body["name"])
		assert.Equal(t, "ana.maria@example.com", body["email"])
		assert.NotContains(t, body, "token")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := setupUserRouter(t)

		resp := testutils.MakeRequest(t, router, "PUT", "/users/does-not-exist", map[string]interface{}{
			"name":     "Ana",
			"email":    "ana@example.com",
			"password": "secret1",
		}, nil)

		testutils.RequireAPIError(t, resp, nethttp.StatusNotFound, "User not found")
	})

	t.Run("name or email of another user returns 400", func(t *testing.T) {
		router := setupUserRouter(t)

		createUser(t, router, "Ana", "ana@example.com", "12345678901")
		other := createUser(t, router, "Bruno", "bruno@example.com", "22345678901")

		resp := testutils.MakeRequest(t, router, "PUT", "/users/"+other["id"].(string), map[string]interface{}{
			"name":     "Ana",
			"email":    "novo@example.com",
			"password": "secret1",
		}, nil)

		testutils.RequireAPIError(t, resp, nethttp.StatusBadRequest, "Name or email already exists")
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("returns 204 and removes the user", func(t *testing.T) {
		router := setupUserRouter(t)

		created := createUser(t, router, "Ana", "ana@example.com", "12345678901")
		id := created["id"].(string)

		resp := testutils.MakeRequest(t, router, "DELETE", "/users/"+id, nil, nil)
		testutils.RequireHTTPStatus(t, resp, nethttp.StatusNoContent)
		assert.Empty(t, resp.Body.String())

		list := testutils.MakeRequest(t, router, "GET", "/users", nil, nil)
		var body []map[string]interface{}
		testutils.ParseResponse(t, list, &body)
		assert.Empty(t, body)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		router := setupUserRouter(t)

		resp := testutils.MakeRequest(t, router, "DELETE", "/users/missing", nil, nil)
		testutils.RequireAPIError(t, resp, nethttp.StatusNotFound, "User not found")
	})
}

func TestAuthHandler_Validate(t *testing.T) {
	router := setupUserRouter(t)

	created := createUser(t, router, "Ana", "ana@example.com", "12345678901")

	t.Run("valid token", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, "POST", "/auth/validate", map[string]interface{}{
			"token": created["token"],
			"email": "ana@example.com",
			"id":    created["id"],
			"cpf":   "12345678901",
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, true, body["valid"])
	})

	t.Run("tampered email", func(t *testing.T) {
		resp := testutils.MakeRequest(t, router, "POST", "/auth/validate", map[string]interface{}{
			"token": created["token"],
			"email": "outra@example.com",
			"id":    created["id"],
			"cpf":   "12345678901",
		}, nil)

		testutils.RequireHTTPStatus(t, resp, nethttp.StatusOK)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, false, body["valid"])
	})
}
