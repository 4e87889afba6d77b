package nhtsa_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/vindecoder/nhtsa"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *nhtsa.Client {
	return nhtsa.New(&http.Client{Transport: fn},
		nhtsa.WithBaseURL("https://vpic.test/api/vehicles/"),
		nhtsa.WithRetry(3, time.Millisecond))
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const golfResponse = `{
  "Count": 1,
  "Message": "Results returned successfully",
  "SearchCriteria": "VIN:WVWZZZAUZHW000001",
  "Results": [{
    "ErrorCode": "0",
    "ErrorText": "0 - VIN decoded clean.",
    "Make": "VOLKSWAGEN",
    "Model": "Golf",
    "ModelYear": "2017",
    "Trim": "GTD",
    "Series": "",
    "FuelTypePrimary": "Diesel",
    "ElectrificationLevel": "",
    "TransmissionStyle": "Manual/Standard",
    "BodyClass": "Hatchback/Liftback/Notchback",
    "Doors": "5",
    "DisplacementCC": "1968.0",
    "EngineHP": "181.0",
    "Note": null,
    "Other": {"nested": [1, 2, 3]}
  }, {
    "Make": "IGNORED"
  }]
}`

func TestClient_Decode_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "vpic.test", r.URL.Host)
		require.Equal(t, "/api/vehicles/DecodeVinValues/WVWZZZAUZHW000001", r.URL.Path)
		require.Equal(t, "json", r.URL.Query().Get("format"))

		return jsonResponse(http.StatusOK, golfResponse), nil
	})

	d, err := c.Decode(context.Background(), " wvwzzzauzhw000001")
	require.NoError(t, err)
	require.Equal(t, "WVWZZZAUZHW000001", d.VIN)
	require.Equal(t, "VOLKSWAGEN", d.Make)
	require.Equal(t, "Golf", d.Model)
	require.Equal(t, "GTD", d.Version)
	require.Equal(t, 2017, d.Year)
	require.Equal(t, domain.FuelDiesel, d.FuelType)
	require.Equal(t, domain.TransmissionManual, d.Transmission)
	require.Equal(t, 5, d.Doors)
	require.Equal(t, 1968, d.EngineCC)
	require.Equal(t, 181, d.PowerHP)
	require.False(t, d.Partial)
}

func TestClient_Decode_partial(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"Results":[{"ErrorCode":"1,11","ErrorText":"1 - Check Digit","Make":"SEAT","Model":"Leon"}]}`), nil
	})

	d, err := c.Decode(context.Background(), "VSSZZZ5FZJR000001")
	require.NoError(t, err)
	require.True(t, d.Partial)
	require.Equal(t, "1 - Check Digit", d.Note)
	require.Equal(t, "Leon", d.Model)
}

func TestClient_Decode_nothingDecoded(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"Results":[{"ErrorCode":"8","Make":"","Model":""}]}`), nil
	})

	_, err := c.Decode(context.Background(), "VSSZZZ5FZJR000001")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_Decode_invalidVIN(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})

	_, err := c.Decode(context.Background(), "SHORT")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Decode_retriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		if calls.Add(1) < 3 {
			return jsonResponse(http.StatusBadGateway, "upstream bad"), nil
		}

		return jsonResponse(http.StatusOK, golfResponse), nil
	})

	d, err := c.Decode(context.Background(), "WVWZZZAUZHW000001")
	require.NoError(t, err)
	require.Equal(t, "Golf", d.Model)
	require.EqualValues(t, 3, calls.Load())
}

func TestClient_Decode_givesUpAfterAttempts(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		calls.Add(1)

		return nil, errors.New("connection refused")
	})

	_, err := c.Decode(context.Background(), "WVWZZZAUZHW000001")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.EqualValues(t, 3, calls.Load())
}

func TestClient_Decode_clientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		calls.Add(1)

		return jsonResponse(http.StatusBadRequest, "bad vin"), nil
	})

	_, err := c.Decode(context.Background(), "WVWZZZAUZHW000001")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "bad vin")
	require.EqualValues(t, 1, calls.Load())
}

func TestReadResults_invalidJSON(t *testing.T) {
	_, err := nhtsa.ReadResults(strings.NewReader(`{"Results": [`))
	require.Error(t, err)

	_, err = nhtsa.ReadResults(strings.NewReader(`{"Results": []}`))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		fuel domain.FuelType
		gear domain.Transmission
	}{
		{"gasoline automatic", map[string]string{
			"FuelTypePrimary": "Gasoline", "TransmissionStyle": "Automatic",
		}, domain.FuelGasoline, domain.TransmissionAutomatic},
		{"hybrid", map[string]string{
			"FuelTypePrimary": "Gasoline", "ElectrificationLevel": "HEV (Hybrid Electric Vehicle)",
		}, domain.FuelHybrid, ""},
		{"plug-in hybrid", map[string]string{
			"FuelTypePrimary": "Gasoline", "ElectrificationLevel": "PHEV (Plug-in Hybrid Electric Vehicle)",
		}, domain.FuelHybrid, ""},
		{"battery electric", map[string]string{
			"FuelTypePrimary": "Electric", "ElectrificationLevel": "BEV (Battery Electric Vehicle)",
			"TransmissionStyle": "Continuously Variable Transmission (CVT)",
		}, domain.FuelElectric, domain.TransmissionAutomatic},
		{"lpg", map[string]string{
			"FuelTypePrimary": "Liquefied Petroleum Gas (propane or LPG)",
		}, domain.FuelLPG, ""},
		{"hydrogen", map[string]string{"FuelTypePrimary": "Hydrogen"}, domain.FuelOther, ""},
		{"unknown", map[string]string{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := nhtsa.Map(tt.in)
			require.Equal(t, tt.fuel, d.FuelType)
			require.Equal(t, tt.gear, d.Transmission)
		})
	}
}
