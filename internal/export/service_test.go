package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/backoffice/internal/ledger"
	"github.com/MrJamesThe3rd/backoffice/internal/reconcile"
)

type zreadFunc func(ctx context.Context, storeCode string, day time.Time) (*reconcile.Preview, error)

func (f zreadFunc) GetZRead(ctx context.Context, storeCode string, day time.Time) (*reconcile.Preview, error) {
	return f(ctx, storeCode, day)
}

func sampleReport() *reconcile.Report {
	zero := 0

	return &reconcile.Report{
		Type:      ledger.ZRead,
		StoreCode: "MNL-01",
		From:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Sales: reconcile.Sales{
			Gross: decimal.RequireFromString("1234567.5"),
			Net:   decimal.RequireFromString("112"),
		},
		AccumulatedSales: &reconcile.AccumulatedSales{New: decimal.NewFromInt(112)},
		ZReadLogsCount:   &zero,
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "1,234,567.50", Amount(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "0.00", Amount(decimal.Zero))
	assert.Equal(t, "-12.50", Amount(decimal.RequireFromString("-12.5")))
}

func TestPublish(t *testing.T) {
	var (
		gotAuth string
		gotBody map[string]any
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	svc := NewService(nil, ts.URL, "secret")

	require.NoError(t, svc.Publish(context.Background(), sampleReport()))
	assert.Equal(t, "Token secret", gotAuth)
	assert.Equal(t, "z-read", gotBody["type"])
	assert.Equal(t, "MNL-01", gotBody["storeCode"])
}

func TestPublish_RejectedByEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad report", http.StatusBadRequest)
	}))
	defer ts.Close()

	svc := NewService(nil, ts.URL, "")

	err := svc.Publish(context.Background(), sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "bad report")
}

func TestPublish_Disabled(t *testing.T) {
	svc := NewService(nil, "", "")
	assert.NoError(t, svc.Publish(context.Background(), sampleReport()))
}

func TestExport(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	src := zreadFunc(func(_ context.Context, storeCode string, d time.Time) (*reconcile.Preview, error) {
		assert.Equal(t, "MNL/01", storeCode)
		assert.True(t, d.Equal(day))

		return &reconcile.Preview{ID: 42, Type: ledger.ZRead, StoreCode: storeCode, Day: "2024-03-05", Report: sampleReport()}, nil
	})

	outDir := t.TempDir()
	svc := NewService(src, "", "")

	items, err := svc.Export(context.Background(), "MNL/01", day, outDir)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, filepath.Join(outDir, "zread_MNL_01_20240305.json"), items[0].FilePath)
	assert.Equal(t, filepath.Join(outDir, "zread_MNL_01_20240305.txt"), items[1].FilePath)

	raw, err := os.ReadFile(items[0].FilePath)
	require.NoError(t, err)

	var decoded reconcile.Report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Sales.Net.Equal(decimal.NewFromInt(112)))

	text, err := os.ReadFile(items[1].FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(text), "1,234,567.50")
	assert.Contains(t, string(text), "NEW ACCUMULATED SALES")
}

func TestExport_NoZRead(t *testing.T) {
	src := zreadFunc(func(context.Context, string, time.Time) (*reconcile.Preview, error) {
		return nil, reconcile.ErrNoZRead
	})

	outDir := filepath.Join(t.TempDir(), "out")
	svc := NewService(src, "", "")

	_, err := svc.Export(context.Background(), "MNL-01", time.Now(), outDir)
	assert.True(t, errors.Is(err, reconcile.ErrNoZRead))

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateSummary(t *testing.T) {
	svc := NewService(nil, "", "")

	r := sampleReport()
	r.Type = ledger.XRead
	r.Partial = true
	r.AccumulatedSales = nil
	r.ZReadLogsCount = nil

	got := svc.GenerateSummary(r)

	assert.True(t, strings.HasPrefix(got, "X-READ | STORE MNL-01 | 2024-03-05\n"))
	assert.Contains(t, got, "PARTIAL")
	assert.NotContains(t, got, "ACCUMULATED")
}
