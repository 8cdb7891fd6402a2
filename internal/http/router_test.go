package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "bookinggo/docs"
	"bookinggo/internal/http/handlers"
	"bookinggo/internal/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	products := handlers.NewProductsHandler(gdb, logger)
	bookings := handlers.NewBookingsHandler(gdb, logger)
	return NewRouter(products, bookings, logger), mock
}

func TestHealthRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok": true}`, rr.Body.String())
}

func TestProductsThroughRouter(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, image, name, price FROM "products" WHERE id < $1`)).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image", "name", "price"}).
			AddRow(1, "https://cdn.example.com/cylinder-14kg.png", "14.2kg Cylinder", 1105.5))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCORSPreflightDefaultAllowsAll(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfiguredOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestSwaggerDocServed(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Booking API")
	assert.Contains(t, rr.Body.String(), "/user_bookings")
}

func TestReadOriginsEnv(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " http://a.example.com , http://b.example.com ,")
	assert.Equal(t,
		[]string{"http://a.example.com", "http://b.example.com"},
		readOriginsEnv("TEST_ORIGINS", "*"))
}

func TestReadOriginsEnvDefaultLogged(t *testing.T) {
	t.Setenv("TEST_ORIGINS", "")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.Equal(t, []string{"*"}, readOriginsEnv("TEST_ORIGINS", "*"))
	assert.Contains(t, buf.String(), "TEST_ORIGINS not set, using default")
}

func TestContainsWildcard(t *testing.T) {
	assert.True(t, containsWildcard([]string{"*"}))
	assert.True(t, containsWildcard([]string{"http://a.example.com", "*"}))
	assert.False(t, containsWildcard([]string{"http://a.example.com"}))
}
