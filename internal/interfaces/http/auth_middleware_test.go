package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jawbreaker1989/queenscorner-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y
// RequireRole sobre un handler dummy que devuelve las claims del contexto.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", AuthMiddleware(testSecret))
	protected.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
			"role":     GetRole(c),
		})
	})
	adminOnly := protected.Group("/admin", RequireRole("admin"))
	adminOnly.Get("/panel", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "user-1", "admin", role, "queenscorner-api", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestMiddlewareConTokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/perfil", "Bearer "+tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareSinToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/perfil", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareHeaderMalformado(t *testing.T) {
	app := buildTestApp()

	casos := []string{
		"Basic abc123",
		"Bearer",
		"Bearer ",
		tokenForRole(t, "admin"), // sin prefijo Bearer
	}
	for _, header := range casos {
		resp := doRequest(t, app, "/perfil", header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header: %q", header)
	}
}

func TestMiddlewareTokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/perfil", "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareTokenConOtroSecret(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secret", "user-1", "admin", "admin", "queenscorner-api", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, "/perfil", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareTokenExpirado(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate(testSecret, "user-1", "admin", "admin", "queenscorner-api", -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "/perfil", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleAdminPermitido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin/panel", "Bearer "+tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleRechazaOtroRol(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin/panel", "Bearer "+tokenForRole(t, "consulta"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGenerarYParsearToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-7", "admin", "admin", "queenscorner-api", 60)
	require.NoError(t, err)

	userID, username, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "admin", role)
}

func TestParsearTokenExpiradoFalla(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-7", "admin", "admin", "queenscorner-api", 0)
	require.NoError(t, err)

	// Un token con expiración en el instante de emisión ya no es válido.
	time.Sleep(10 * time.Millisecond)
	_, _, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}
