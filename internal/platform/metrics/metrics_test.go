// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/metrics"
)

/*
TestMetrics_Counters verifies the domain counters move as expected.
*/
func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.IncrementReportsCreated()
	m.IncrementReportsCreated()
	m.RecordExport("grouped", 12)
	m.RecordUpload("image")
	m.ObserveRequest(http.MethodGet, "/api/v1/reports", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReportsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportsGenerated.WithLabelValues("grouped")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.ExportRows.WithLabelValues("grouped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UploadsStored.WithLabelValues("image")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/reports", "200")))
}

/*
TestMetrics_Handler exposes the registry in the text exposition format.
*/
func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.IncrementReportsCreated()

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.Contains(recorder.Body.String(), "gumruk_reports_created_total 1"))
}
