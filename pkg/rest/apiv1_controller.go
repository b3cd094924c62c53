// Package rest implements the REST API for address validation and the
// address book.
package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/inbucket/emailaddr/pkg/addrstore"
	"github.com/inbucket/emailaddr/pkg/emailaddr"
	"github.com/inbucket/emailaddr/pkg/rest/model"
	"github.com/inbucket/emailaddr/pkg/server/web"
)

// jsonAddress renders addr for the API.
func jsonAddress(addr emailaddr.Address) *model.JSONAddressV1 {
	return &model.JSONAddressV1{
		Address:    addr.String(),
		LocalPart:  addr.LocalPart().String(),
		Domain:     addr.Domain().String(),
		DomainKind: addr.Domain().Kind().String(),
		Quoted:     addr.LocalPart().Quoted(),
		Normalized: addr.Normalize().String(),
		Hash:       addrstore.IndexHash(addr),
	}
}

// decodeRequest unmarshals a JSON request body into v.
func decodeRequest(req *http.Request, v interface{}) error {
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %v", err)
	}
	return nil
}

// badRequest renders a 400 with a JSON error body.
func badRequest(w http.ResponseWriter, err error) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	return json.NewEncoder(w).Encode(&model.JSONErrorV1{Error: err.Error()})
}

// AddressValidateV1 validates a single address. A syntactically invalid
// address is a successful request with valid=false, not an HTTP error.
func AddressValidateV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	in := &model.JSONAddressRequestV1{}
	if err := decodeRequest(req, in); err != nil {
		return badRequest(w, err)
	}
	addr, err := emailaddr.Parse(in.Address)
	if err != nil {
		return web.RenderJSON(w, &model.JSONValidateResultV1{Valid: false, Error: err.Error()})
	}
	return web.RenderJSON(w, &model.JSONValidateResultV1{Valid: true, Address: jsonAddress(addr)})
}

// AddressNormalizeV1 renders the canonical form of an address.
func AddressNormalizeV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	in := &model.JSONAddressRequestV1{}
	if err := decodeRequest(req, in); err != nil {
		return badRequest(w, err)
	}
	addr, err := emailaddr.Parse(in.Address)
	if err != nil {
		return badRequest(w, err)
	}
	return web.RenderJSON(w, jsonAddress(addr.Normalize()))
}

// AddressCompareV1 orders two addresses under the RFC equivalence rules.
func AddressCompareV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	in := &model.JSONCompareRequestV1{}
	if err := decodeRequest(req, in); err != nil {
		return badRequest(w, err)
	}
	a, err := emailaddr.Parse(in.A)
	if err != nil {
		return badRequest(w, fmt.Errorf("address a: %v", err))
	}
	b, err := emailaddr.Parse(in.B)
	if err != nil {
		return badRequest(w, fmt.Errorf("address b: %v", err))
	}
	return web.RenderJSON(w, &model.JSONCompareResultV1{
		Comparison:       a.Compare(b),
		DomainComparison: emailaddr.CompareDomains(a, b),
		Equal:            a.Equal(b),
	})
}

// AddressBookListV1 renders the stored addresses in comparison order.
func AddressBookListV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	addrs := ctx.Store.All()
	out := make([]*model.JSONAddressV1, len(addrs))
	for i, addr := range addrs {
		out[i] = jsonAddress(addr)
	}
	return web.RenderJSON(w, out)
}

// AddressBookAddV1 stores an address, deduplicating under RFC equivalence.
func AddressBookAddV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	in := &model.JSONAddressRequestV1{}
	if err := decodeRequest(req, in); err != nil {
		return badRequest(w, err)
	}
	addr, err := emailaddr.Parse(in.Address)
	if err != nil {
		return badRequest(w, err)
	}
	added, err := ctx.Store.Add(addr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInsufficientStorage)
		return nil
	}
	if added {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
	}
	return web.RenderJSON(w, &model.JSONAddResultV1{Added: added, Address: jsonAddress(addr)})
}

// AddressBookDeleteV1 removes the address equivalent to the one supplied.
func AddressBookDeleteV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	in := &model.JSONAddressRequestV1{}
	if err := decodeRequest(req, in); err != nil {
		return badRequest(w, err)
	}
	addr, err := emailaddr.Parse(in.Address)
	if err != nil {
		return badRequest(w, err)
	}
	if !ctx.Store.Remove(addr) {
		http.NotFound(w, req)
		return nil
	}
	return web.RenderJSON(w, jsonAddress(addr))
}
