package rest

import (
	"github.com/gorilla/mux"
	"github.com/inbucket/emailaddr/pkg/server/web"
)

// SetupRoutes populates the routes for the REST interface
func SetupRoutes(r *mux.Router) {
	// API v1
	r.Path("/v1/address/validate").Handler(
		web.Handler(AddressValidateV1)).Name("AddressValidateV1").Methods("POST")
	r.Path("/v1/address/normalize").Handler(
		web.Handler(AddressNormalizeV1)).Name("AddressNormalizeV1").Methods("POST")
	r.Path("/v1/address/compare").Handler(
		web.Handler(AddressCompareV1)).Name("AddressCompareV1").Methods("POST")
	r.Path("/v1/addresses").Handler(
		web.Handler(AddressBookListV1)).Name("AddressBookListV1").Methods("GET")
	r.Path("/v1/addresses").Handler(
		web.Handler(AddressBookAddV1)).Name("AddressBookAddV1").Methods("POST")
	r.Path("/v1/addresses").Handler(
		web.Handler(AddressBookDeleteV1)).Name("AddressBookDeleteV1").Methods("DELETE")
}
