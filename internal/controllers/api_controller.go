package controllers

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"qrd/internal/codec"
	"qrd/internal/history"
	"qrd/internal/models"
	"qrd/internal/providers"
	"qrd/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.HistoryServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewApiController(logger providers.Logger, service services.HistoryServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

type scanRequest struct {
	Data   string `json:"data"`
	Format string `json:"format"`
}

type encodeRequest struct {
	Type   string          `json:"type"`
	Fields json.RawMessage `json:"fields"`
}

type encodeResponse struct {
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

type deleteResponse struct {
	Removed int `json:"removed"`
}

func getQuery(r *http.Request) history.Query {
	params := r.URL.Query()
	return history.Query{
		Search: params.Get("q"),
		Type:   params.Get("type"),
		Sort:   params.Get("sort"),
		Limit:  cast.ToInt(params.Get("limit")),
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) RecordScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload scanRequest
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil || payload.Data == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ev := ac.service.RecordScan(payload.Data, payload.Format)
	ac.metrics.IncScansRecorded(ev.Type.String())

	gson, err := json.Marshal(ev)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(gson)
}

// EncodePayload builds the wire payload string for one field set. Intent
// types that can only be scanned, not generated, answer 422.
func (ac *ApiController) EncodePayload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req encodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	intent, ok := models.ParseIntentType(req.Type)
	if !ok {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	fields, err := decodeFields(intent, req.Fields)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	payload, err := codec.Encode(fields)
	if err != nil {
		http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
		return
	}

	gson, err := json.Marshal(encodeResponse{Type: intent.String(), Payload: payload})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func decodeFields(intent models.IntentType, raw json.RawMessage) (models.FieldSet, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	unmarshal := func(dst any) error { return json.Unmarshal(raw, dst) }

	switch intent {
	case models.IntentURL:
		var f models.URLFields
		return f, unmarshal(&f)
	case models.IntentEmail:
		var f models.EmailFields
		return f, unmarshal(&f)
	case models.IntentPhone:
		var f models.PhoneFields
		return f, unmarshal(&f)
	case models.IntentSMS:
		var f models.SMSFields
		return f, unmarshal(&f)
	case models.IntentWifi:
		var f models.WifiFields
		return f, unmarshal(&f)
	case models.IntentContact:
		var f models.ContactFields
		return f, unmarshal(&f)
	case models.IntentText:
		var f models.TextFields
		return f, unmarshal(&f)
	default:
		// Location and any future classify-only types carry no field set.
		return nil, nil
	}
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	q := getQuery(r)
	key := fmt.Sprintf("list:%d:%s:%s:%s:%d", ac.service.GetRevision(), q.Search, q.Type, q.Sort, q.Limit)
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.GetHistory(q), nil
	})
}

func (ac *ApiController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	key := fmt.Sprintf("analytics:%d", ac.service.GetRevision())
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.service.GetAnalytics(), nil
	})
}

func (ac *ApiController) ExportHistory(w http.ResponseWriter, r *http.Request) {
	csv := ac.service.ExportCSV(getQuery(r))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="scan-history.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csv)
}

// DeleteHistory removes the events named in the request body, or the whole
// history when no ids are given.
func (ac *ApiController) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req deleteRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}

	var removed int
	if len(req.IDs) == 0 {
		removed = ac.service.Clear()
	} else {
		removed = ac.service.RemoveByIDs(req.IDs)
	}

	gson, err := json.Marshal(deleteResponse{Removed: removed})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
