// Package nhtsa provides a vindecoder.Client backed by the public NHTSA vPIC
// API (https://vpic.nhtsa.dot.gov/api/).
package nhtsa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/vindecoder"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-faster/jx"
)

// DefaultBaseURL is the public vPIC endpoint.
const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles"

// Client talks to the vPIC REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	attempts   uint
	delay      time.Duration
}

var _ vindecoder.Client = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another vPIC compatible server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithRetry sets the number of attempts and the initial backoff delay used for
// transient failures.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		c.delay = delay
	}
}

// New constructs a Client using httpClient for all requests.
func New(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		attempts:   3,
		delay:      500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Decode calls DecodeVinValues for vin. 5xx answers and network failures are
// retried with exponential backoff; 4xx answers are not.
func (c *Client) Decode(ctx context.Context, vin string) (*vindecoder.Decoded, error) {
	vin, err := vindecoder.ValidateVIN(vin)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	values, err := retry.DoWithData(
		func() (map[string]string, error) { return c.fetch(ctx, vin) },
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return errors.Is(err, serrors.ErrUnavailable) }),
	)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	decoded := Map(values)
	decoded.VIN = vin
	if decoded.Make == "" && decoded.Model == "" {
		return nil, serrors.With(serrors.ErrNotFound, "vin %s could not be decoded", vin)
	}

	return decoded, nil
}

func (c *Client) fetch(ctx context.Context, vin string) (map[string]string, error) {
	// https://vpic.nhtsa.dot.gov/api/ "Decode VIN (flat format)"
	endpoint := c.baseURL + "/DecodeVinValues/" + url.PathEscape(vin) + "?format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "vin decode aborted")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach vin decoder")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "vin decoder rate limited")
	case resp.StatusCode >= 500:
		return nil, serrors.With(serrors.ErrUnavailable, "vin decoder answered %d: %s", resp.StatusCode, snippet(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "vin %s not found", vin)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrBadRequest, "vin decoder answered %d: %s", resp.StatusCode, snippet(resp.Body))
	}

	values, err := ReadResults(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not decode vin response: %w", err)
	}

	return values, nil
}

func snippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))

	return strings.TrimSpace(string(b))
}

// ReadResults streams a vPIC flat-format document and returns the first
// entry of its Results array. Non-string values are ignored.
func ReadResults(r io.Reader) (map[string]string, error) {
	var first map[string]string

	d := jx.Decode(r, 4096)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "Results" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			if first != nil {
				return d.Skip()
			}
			first = make(map[string]string)

			return d.Obj(func(d *jx.Decoder, key string) error {
				if d.Next() != jx.String {
					return d.Skip()
				}
				v, err := d.Str()
				if err != nil {
					return err
				}
				if v = strings.TrimSpace(v); v != "" && v != "Not Applicable" {
					first[key] = v
				}

				return nil
			})
		})
	})
	if err != nil {
		return nil, fmt.Errorf("invalid vpic json: %w", err)
	}
	if first == nil {
		return nil, serrors.With(serrors.ErrNotFound, "vpic response carries no results")
	}

	return first, nil
}

// Map converts vPIC variables into a Decoded value.
func Map(v map[string]string) *vindecoder.Decoded {
	d := &vindecoder.Decoded{
		Make:         v["Make"],
		Model:        v["Model"],
		Version:      firstNonEmpty(v["Trim"], v["Series"]),
		Year:         atoi(v["ModelYear"]),
		FuelType:     fuelType(v["FuelTypePrimary"], v["ElectrificationLevel"]),
		Transmission: transmission(v["TransmissionStyle"]),
		BodyType:     v["BodyClass"],
		Doors:        atoi(v["Doors"]),
		EngineCC:     atoi(v["DisplacementCC"]),
		PowerHP:      atoi(v["EngineHP"]),
	}
	if code := v["ErrorCode"]; code != "" && code != "0" {
		d.Partial = true
		d.Note = v["ErrorText"]
	}

	return d
}

func fuelType(primary, electrification string) domain.FuelType {
	p := strings.ToLower(primary)
	e := strings.ToLower(electrification)
	switch {
	case strings.HasPrefix(e, "bev"):
		return domain.FuelElectric
	case strings.Contains(e, "hev") || strings.Contains(e, "hybrid"):
		return domain.FuelHybrid
	case strings.Contains(p, "electric"):
		return domain.FuelElectric
	case strings.Contains(p, "diesel"):
		return domain.FuelDiesel
	case strings.Contains(p, "gasoline") || strings.Contains(p, "flexible fuel"):
		return domain.FuelGasoline
	case strings.Contains(p, "lpg") || strings.Contains(p, "propane"):
		return domain.FuelLPG
	case p == "":
		return ""
	default:
		return domain.FuelOther
	}
}

func transmission(style string) domain.Transmission {
	s := strings.ToLower(style)
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "manual/standard") || s == "manual":
		return domain.TransmissionManual
	default:
		// automatic, CVT, DCT and automated manual gearboxes
		return domain.TransmissionAutomatic
	}
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return int(math.Round(f))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
