// Package model contains the JSON types rendered by the REST API.
package model

// JSONAddressV1 describes a validated email address.
type JSONAddressV1 struct {
	Address    string `json:"address"`
	LocalPart  string `json:"localPart"`
	Domain     string `json:"domain"`
	DomainKind string `json:"domainKind"`
	Quoted     bool   `json:"quoted"`
	Normalized string `json:"normalized"`
	Hash       uint32 `json:"hash"`
}

// JSONAddressRequestV1 is the body for single-address operations.
type JSONAddressRequestV1 struct {
	Address string `json:"address"`
}

// JSONValidateResultV1 is the response to a validate request.
type JSONValidateResultV1 struct {
	Valid   bool           `json:"valid"`
	Error   string         `json:"error,omitempty"`
	Address *JSONAddressV1 `json:"address,omitempty"`
}

// JSONCompareRequestV1 is the body for a compare request.
type JSONCompareRequestV1 struct {
	A string `json:"a"`
	B string `json:"b"`
}

// JSONCompareResultV1 is the response to a compare request.
type JSONCompareResultV1 struct {
	Comparison       int  `json:"comparison"`
	DomainComparison int  `json:"domainComparison"`
	Equal            bool `json:"equal"`
}

// JSONErrorV1 carries a request failure.
type JSONErrorV1 struct {
	Error string `json:"error"`
}

// JSONAddResultV1 is the response to an address book add.
type JSONAddResultV1 struct {
	Added   bool           `json:"added"`
	Address *JSONAddressV1 `json:"address"`
}
