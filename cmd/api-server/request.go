package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/protomem/timeclock/internal/model"
)

func personIDFromRequest(r *http.Request) (model.ID, error) {
	return idURLParam(r, "personId")
}

func sessionIDFromRequest(r *http.Request) (model.ID, error) {
	return idURLParam(r, "sessionId")
}

func idURLParam(r *http.Request, key string) (model.ID, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return model.ID(id), nil
}

func optionalStringQueryParams(r *http.Request, key string) *string {
	ref := new(string)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil
	}
	*ref = val
	return ref
}
