package testserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iudanet/cloudstore/pkg/api"
)

// dataRequest тело POST и PUT запросов.
// value хранится как строка: JSON строка разворачивается,
// любое другое JSON значение сохраняется как есть.
type dataRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
	ID    int64           `json:"id"`
}

func (r dataRequest) value() (string, bool) {
	raw := bytes.TrimSpace(r.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw), true
	}
	return compact.String(), true
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	tokenString := r.Header.Get(api.HeaderAuthToken)
	if tokenString == "" {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	// Data функция не различает просроченный и поддельный токен
	c, err := s.tokens.parse(tokenString)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	ownerID := c.UserID

	switch r.Method {
	case http.MethodGet:
		if r.URL.Query().Has("id") {
			id, ok := queryID(w, r)
			if !ok {
				return
			}
			rec, err := s.store.getRecord(ownerID, id)
			if err != nil {
				writeError(w, http.StatusNotFound, "Data not found")
				return
			}
			writeJSON(w, http.StatusOK, rec)
			return
		}
		writeJSON(w, http.StatusOK, api.RecordListResponse{Data: s.store.listRecords(ownerID)})

	case http.MethodPost:
		var req dataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		value, ok := req.value()
		if req.Key == "" || !ok {
			writeError(w, http.StatusBadRequest, "Missing key or value")
			return
		}
		writeJSON(w, http.StatusCreated, s.store.createRecord(ownerID, req.Key, value, s.now()))

	case http.MethodPut:
		var req dataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		value, ok := req.value()
		if req.ID == 0 || !ok {
			writeError(w, http.StatusBadRequest, "Missing id or value")
			return
		}
		rec, err := s.store.updateRecord(ownerID, req.ID, value, s.now())
		if err != nil {
			writeError(w, http.StatusNotFound, "Data not found")
			return
		}
		writeJSON(w, http.StatusOK, rec)

	case http.MethodDelete:
		id, ok := queryID(w, r)
		if !ok {
			return
		}
		if err := s.store.deleteRecord(ownerID, id); err != nil {
			if errors.Is(err, errRecordNotFound) {
				writeError(w, http.StatusNotFound, "Data not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusOK, api.DeleteRecordResponse{Success: true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// queryID разбирает параметр ?id=, при ошибке отвечает 400
func queryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Missing id")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
