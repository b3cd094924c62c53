package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/inbucket/emailaddr/pkg/addrstore"
)

// Handler is a function type that handles an HTTP request in emailaddr.
type Handler func(http.ResponseWriter, *http.Request, *Context) error

// Context provides the handler with request routing variables and the
// address store.
type Context struct {
	Vars  map[string]string
	Store *addrstore.Store
}

// ServeHTTP builds the context and passes onto the real handler.
func (h Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx := &Context{
		Vars:  mux.Vars(req),
		Store: store,
	}
	err := h(w, req, ctx)
	if err != nil {
		log.Error().Str("module", "web").Str("path", req.RequestURI).Err(err).
			Msg("Error handling request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RenderJSON sets the correct HTTP headers for JSON, then writes the
// specified data (typically a struct) encoded in JSON.
func RenderJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Expires", "-1")
	enc := json.NewEncoder(w)
	return enc.Encode(data)
}
