package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitzone/internal/class"
	"fitzone/internal/config"
	"fitzone/internal/report"
	"fitzone/internal/server"
	"fitzone/internal/subscription"
	"fitzone/internal/trainer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:           "8080",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	classRepo := class.NewRepository()
	trainerRepo := trainer.NewRepository()
	subscriptionRepo := subscription.NewRepository()

	classService := class.NewService(classRepo)
	trainerService := trainer.NewService(trainerRepo, classRepo)
	subscriptionService := subscription.NewService(subscriptionRepo, classRepo, subscription.NewDefaultPricing())
	reportService := report.NewService(classRepo, trainerRepo)

	return server.New(cfg, classService, trainerService, subscriptionService, reportService).Router()
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	var err error
	if body != "" {
		req, err = http.NewRequest(method, path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequest(method, path, nil)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestSubscriptionFlow(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "POST", "/classes", `{"name":"Yoga","intensity":"light","base_price":30.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "POST", "/subscriptions", `{"subscriber_name":"Maria","class_name":"yoga","months":12}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var sub subscription.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Equal(t, 1, sub.ID)
	assert.Equal(t, "Yoga", sub.ClassName)
	assert.InDelta(t, 275.40, sub.Price, 1e-9)

	w = doRequest(t, router, "GET", "/subscriptions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var subs []subscription.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, sub, subs[0])
}

func TestPremiumSubscriptionPricing(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "POST", "/classes", `{"name":"CrossFit","intensity":"hard","base_price":45.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "POST", "/subscriptions", `{"subscriber_name":"Ion","class_name":"CrossFit","months":6,"is_premium":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var sub subscription.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.InDelta(t, 387.50, sub.Price, 1e-9)
}

func TestSubscriptionWithoutClassPricesToZero(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "POST", "/subscriptions", `{"subscriber_name":"Maria","months":12,"is_premium":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var sub subscription.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	assert.Zero(t, sub.Price)
}

func TestSubscriptionPriceImmuneToLaterCatalogChanges(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "POST", "/classes", `{"name":"Yoga","intensity":"light","base_price":30.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "POST", "/subscriptions", `{"subscriber_name":"Maria","class_name":"Yoga","months":12}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// A second catalog entry with the same name does not touch stored
	// subscriptions; the ledger keeps the price computed at creation.
	w = doRequest(t, router, "POST", "/classes", `{"name":"Yoga","intensity":"hard","base_price":99.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "GET", "/subscriptions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var subs []subscription.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.InDelta(t, 275.40, subs[0].Price, 1e-9)
}

func TestTrainerFlow(t *testing.T) {
	router := newTestRouter()

	// Unknown specialization rejected.
	w := doRequest(t, router, "POST", "/trainers", `{"name":"Ana","email":"ana@fitzone.ro","employment":"permanent","specialization":"Yoga","monthly_salary":2500}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, "POST", "/classes", `{"name":"Yoga","intensity":"light","base_price":30.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "POST", "/trainers", `{"name":"Ana","email":"ana@fitzone.ro","employment":"permanent","specialization":"Yoga","monthly_salary":2500}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var first trainer.Trainer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 1, first.ID)

	w = doRequest(t, router, "POST", "/trainers", `{"name":"Carlos","email":"carlos@trainco.com","employment":"external","company":"TrainCo","hourly_rate":60}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var second trainer.Trainer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, 2, second.ID)

	w = doRequest(t, router, "GET", "/trainers/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, "GET", "/trainers/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, "POST", "/classes", `{"name":"Yoga","intensity":"light","base_price":30.0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, router, "POST", "/classes", `{"name":"CrossFit","intensity":"hard","base_price":45.0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "POST", "/trainers", `{"name":"Ana","email":"ana@fitzone.ro","employment":"permanent","specialization":"Yoga","monthly_salary":2500}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, router, "POST", "/trainers", `{"name":"Carlos","email":"carlos@trainco.com","employment":"external","company":"TrainCo","hourly_rate":60}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, "GET", "/report", "")
	require.Equal(t, http.StatusOK, w.Code)

	var groups []report.Group
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 3)

	assert.Equal(t, "CrossFit", groups[0].ClassName)
	assert.Empty(t, groups[0].Trainers)

	assert.Equal(t, report.UnassignedGroup, groups[1].ClassName)
	require.Len(t, groups[1].Trainers, 1)
	assert.Equal(t, "Carlos", groups[1].Trainers[0].Name)

	assert.Equal(t, "Yoga", groups[2].ClassName)
	require.Len(t, groups[2].Trainers, 1)
	assert.Equal(t, "Ana", groups[2].Trainers[0].Name)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter()

	// Generate at least one sample before scraping.
	w := doRequest(t, router, "GET", "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, "GET", "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fitzone_http_requests_total")
}
