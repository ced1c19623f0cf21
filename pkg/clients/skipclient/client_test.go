package skipclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/skip-hire/pkg/core/model"
)

var testLocation = model.Location{Postcode: "NR32", Area: "Lowestoft"}

const validPayload = `[
  {"id": 17933, "size": 4, "hire_period_days": 14, "price_before_vat": 278, "vat": 20, "allowed_on_road": true, "allows_heavy_waste": true},
  {"id": 17934, "size": 6, "hire_period_days": 14, "price_before_vat": 305, "vat": 20, "allowed_on_road": true, "allows_heavy_waste": false}
]`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetSkipsByLocation_Success(t *testing.T) {
	var gotPath, gotPostcode, gotArea string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPostcode = r.URL.Query().Get("postcode")
		gotArea = r.URL.Query().Get("area")
		_, _ = w.Write([]byte(validPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", 5*time.Second, zap.NewNop())
	skips, err := client.GetSkipsByLocation(context.Background(), testLocation)
	require.NoError(t, err)

	assert.Equal(t, "/api/skips/by-location", gotPath)
	assert.Equal(t, "NR32", gotPostcode)
	assert.Equal(t, "Lowestoft", gotArea)

	require.Len(t, skips, 2)
	assert.Equal(t, model.RawSkipRecord{
		ID:               17933,
		Size:             4,
		PriceBeforeVAT:   278,
		VAT:              20,
		HirePeriodDays:   14,
		AllowedOnRoad:    true,
		AllowsHeavyWaste: true,
	}, skips[0])
	assert.Equal(t, 17934, skips[1].ID)
}

func TestGetSkipsByLocation_NonSuccessStatus(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `{"error":"boom"}`)

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.GetSkipsByLocation(context.Background(), testLocation)

	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetSkipsByLocation_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, 5*time.Second, zap.NewNop())
	_, err := client.GetSkipsByLocation(context.Background(), testLocation)

	assert.ErrorIs(t, err, ErrTransport)
}

func TestGetSkipsByLocation_CancelledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, validPayload)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.GetSkipsByLocation(ctx, testLocation)

	assert.ErrorIs(t, err, ErrTransport)
}

func TestGetSkipsByLocation_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"null", `null`},
		{"object instead of array", `{"skips": []}`},
		{"malformed json", `[{"id": 1,`},
		{"zero size", `[{"id": 1, "size": 0, "hire_period_days": 7, "price_before_vat": 100, "vat": 20}]`},
		{"negative price", `[{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": -1, "vat": 20}]`},
		{"negative vat", `[{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": 100, "vat": -5}]`},
		{"price above limit", `[{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": 1e19, "vat": 20}]`},
		{"vat above limit", `[{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": 100, "vat": 1e300}]`},
		{"size above limit", `[{"id": 1, "size": 1844674407370955161, "hire_period_days": 7, "price_before_vat": 100, "vat": 20}]`},
		{"trailing garbage", `[{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": 100, "vat": 20}] trailing`},
		{"second json value", `[{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": 100, "vat": 20}][]`},
		{"missing hire period", `[{"id": 1, "size": 4, "price_before_vat": 100, "vat": 20}]`},
		{"duplicate ids", `[
			{"id": 1, "size": 4, "hire_period_days": 7, "price_before_vat": 100, "vat": 20},
			{"id": 1, "size": 6, "hire_period_days": 7, "price_before_vat": 120, "vat": 20}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.body)

			client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
			_, err := client.GetSkipsByLocation(context.Background(), testLocation)

			assert.ErrorIs(t, err, ErrInvalidPayload)
			assert.NotErrorIs(t, err, ErrTransport)
		})
	}
}
