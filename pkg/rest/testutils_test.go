package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/inbucket/emailaddr/pkg/addrstore"
	"github.com/inbucket/emailaddr/pkg/config"
	"github.com/inbucket/emailaddr/pkg/server/web"
)

func testRestGet(url string) (*httptest.ResponseRecorder, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	w := httptest.NewRecorder()
	web.Router.ServeHTTP(w, req)
	return w, nil
}

func testRestPost(url string, body string) (*httptest.ResponseRecorder, error) {
	req, err := http.NewRequest("POST", url, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/json")
	w := httptest.NewRecorder()
	web.Router.ServeHTTP(w, req)
	return w, nil
}

func testRestDelete(url string, body string) (*httptest.ResponseRecorder, error) {
	req, err := http.NewRequest("DELETE", url, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Content-Type", "application/json")
	w := httptest.NewRecorder()
	web.Router.ServeHTTP(w, req)
	return w, nil
}

// setupWebServer wires a fresh store into the global router. Registering
// the routes repeatedly is harmless, mux matches the first registration.
func setupWebServer(cfg config.Storage) *addrstore.Store {
	store := addrstore.New(cfg)
	shutdownChan := make(chan bool)
	web.Initialize(config.Web{}, shutdownChan, store)
	SetupRoutes(web.Router.PathPrefix("/api/").Subrouter())
	return store
}
