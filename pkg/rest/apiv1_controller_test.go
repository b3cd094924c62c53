package rest

import (
	"encoding/json"
	"testing"

	"github.com/inbucket/emailaddr/pkg/config"
	"github.com/inbucket/emailaddr/pkg/rest/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost/api/v1"

func TestRestAddressValidate(t *testing.T) {
	setupWebServer(config.Storage{Capacity: 10})

	// Valid address.
	w, err := testRestPost(baseURL+"/address/validate", `{"address":"First.Last@EXAMPLE.com"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	result := &model.JSONValidateResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(result))
	assert.True(t, result.Valid)
	require.NotNil(t, result.Address)
	assert.Equal(t, "First.Last@EXAMPLE.com", result.Address.Address)
	assert.Equal(t, "First.Last", result.Address.LocalPart)
	assert.Equal(t, "EXAMPLE.com", result.Address.Domain)
	assert.Equal(t, "standard", result.Address.DomainKind)
	assert.False(t, result.Address.Quoted)
	assert.Equal(t, "first.last@example.com", result.Address.Normalized)

	// Invalid address is still a 200, flagged invalid.
	w, err = testRestPost(baseURL+"/address/validate", `{"address":"no.separator.example.com"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	result = &model.JSONValidateResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(result))
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.Address)

	// Malformed request body.
	w, err = testRestPost(baseURL+"/address/validate", `{"address":`)
	require.NoError(t, err)
	assert.Equal(t, 400, w.Code)
}

func TestRestAddressValidateQuoted(t *testing.T) {
	setupWebServer(config.Storage{Capacity: 10})

	w, err := testRestPost(baseURL+"/address/validate", `{"address":"\"foo bar\"@example.com"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	result := &model.JSONValidateResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(result))
	assert.True(t, result.Valid)
	require.NotNil(t, result.Address)
	assert.True(t, result.Address.Quoted)
	assert.Equal(t, `"foo bar"@example.com`, result.Address.Normalized)
}

func TestRestAddressNormalize(t *testing.T) {
	setupWebServer(config.Storage{Capacity: 10})

	w, err := testRestPost(baseURL+"/address/normalize", `{"address":"\"FOO\"@Example.COM"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	result := &model.JSONAddressV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(result))
	assert.Equal(t, "foo@example.com", result.Address)
	assert.False(t, result.Quoted)

	// Invalid input is a client error here, unlike validate.
	w, err = testRestPost(baseURL+"/address/normalize", `{"address":"a@b@c"}`)
	require.NoError(t, err)
	assert.Equal(t, 400, w.Code)
}

func TestRestAddressCompare(t *testing.T) {
	setupWebServer(config.Storage{Capacity: 10})

	w, err := testRestPost(baseURL+"/address/compare",
		`{"a":"FOO@EXAMPLE.COM","b":"foo@example.com"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	result := &model.JSONCompareResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(result))
	assert.Equal(t, 0, result.Comparison)
	assert.Equal(t, 0, result.DomainComparison)
	assert.True(t, result.Equal)

	w, err = testRestPost(baseURL+"/address/compare",
		`{"a":"ann@alpha.example","b":"ann@beta.example"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	result = &model.JSONCompareResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(result))
	assert.Negative(t, result.Comparison)
	assert.Negative(t, result.DomainComparison)
	assert.False(t, result.Equal)

	// One bad address fails the whole request.
	w, err = testRestPost(baseURL+"/address/compare",
		`{"a":"ann@alpha.example","b":"not-an-address"}`)
	require.NoError(t, err)
	assert.Equal(t, 400, w.Code)
}

func TestRestAddressBook(t *testing.T) {
	setupWebServer(config.Storage{Capacity: 10})

	// Empty book.
	w, err := testRestGet(baseURL + "/addresses")
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	var list []*model.JSONAddressV1
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	assert.Empty(t, list)

	// First add is created.
	w, err = testRestPost(baseURL+"/addresses", `{"address":"Bob@Beta.example"}`)
	require.NoError(t, err)
	require.Equal(t, 201, w.Code)
	added := &model.JSONAddResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(added))
	assert.True(t, added.Added)

	// An equivalent spelling is deduplicated.
	w, err = testRestPost(baseURL+"/addresses", `{"address":"BOB@BETA.EXAMPLE"}`)
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	added = &model.JSONAddResultV1{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(added))
	assert.False(t, added.Added)

	w, err = testRestPost(baseURL+"/addresses", `{"address":"ann@alpha.example"}`)
	require.NoError(t, err)
	require.Equal(t, 201, w.Code)

	// List comes back in comparison order, domain first.
	w, err = testRestGet(baseURL + "/addresses")
	require.NoError(t, err)
	require.Equal(t, 200, w.Code)
	list = nil
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "ann@alpha.example", list[0].Normalized)
	assert.Equal(t, "bob@beta.example", list[1].Normalized)

	// Delete by any equivalent spelling.
	w, err = testRestDelete(baseURL+"/addresses", `{"address":"BOB@beta.EXAMPLE"}`)
	require.NoError(t, err)
	assert.Equal(t, 200, w.Code)

	// A second delete has nothing to remove.
	w, err = testRestDelete(baseURL+"/addresses", `{"address":"bob@beta.example"}`)
	require.NoError(t, err)
	assert.Equal(t, 404, w.Code)
}

func TestRestAddressBookCapacity(t *testing.T) {
	setupWebServer(config.Storage{Capacity: 1})

	w, err := testRestPost(baseURL+"/addresses", `{"address":"ann@alpha.example"}`)
	require.NoError(t, err)
	require.Equal(t, 201, w.Code)

	w, err = testRestPost(baseURL+"/addresses", `{"address":"bob@beta.example"}`)
	require.NoError(t, err)
	assert.Equal(t, 507, w.Code)
}
