package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qrd/internal/controllers"
	"qrd/internal/structures"
	"qrd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutesController() *controllers.ApiController {
	return controllers.NewApiController(
		&testutil.MockLogger{},
		&testutil.MockHistoryService{},
		testutil.NewMockCache(),
		&testutil.MockMetrics{},
	)
}

func TestInitRoutes_RegistersSixRoutes(t *testing.T) {
	router := InitRoutes(newRoutesController(), &structures.Config{})
	routes := router.GetRoutes()

	require.Len(t, routes, 6)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/list")
	assert.Contains(t, urls, "/analytics")
	assert.Contains(t, urls, "/export")
	assert.Contains(t, urls, "/scan")
	assert.Contains(t, urls, "/encode")
	assert.Contains(t, urls, "/history")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	router := InitRoutes(newRoutesController(), &structures.Config{})

	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}

	// GET /list with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/list", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST /scan with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/scan", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// DELETE /history with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
