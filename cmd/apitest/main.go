// Command apitest runs a smoke test against a running converter API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080 -key $API_KEY
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type DayResponse struct {
	JDN          int64  `json:"jdn"`
	GregorianISO string `json:"gregorian_iso"`
	EthiopicISO  string `json:"ethiopic_iso"`
	Era          string `json:"era"`
	Weekday      string `json:"weekday"`
	Source       string `json:"source"`
}

type RangeResponse struct {
	Count  int           `json:"count"`
	Source string        `json:"source"`
	Days   []DayResponse `json:"days"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run(importDays bool) {
	fmt.Println("==============================================")
	fmt.Println("Ethiopian Date Converter API Smoke Test")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testConversions()
	tr.testInvalidDates()
	tr.testRange()
	if importDays {
		tr.testImport()
	}

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if _, err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health.Status != "healthy" {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
		return
	}
	tr.recordSuccess("Health check passed")
}

func (tr *TestRunner) testConversions() {
	tr.printSection("Conversions")

	testCases := []struct {
		path        string
		wantISO     func(DayResponse) string
		want        string
		description string
	}{
		{"/api/v1/convert/ethiopic/2017-01-01", gregorianOf, "2024-09-11", "Enkutatash 2017"},
		{"/api/v1/convert/ethiopic/2017-04-16", gregorianOf, "2024-12-25", "Gregorian Christmas"},
		{"/api/v1/convert/ethiopic/2015-13-06", gregorianOf, "2023-09-11", "Pagume 6 in a leap year"},
		{"/api/v1/convert/ethiopic/1-01-01", gregorianOf, "0008-08-27", "First day of Amete Mihret"},
		{"/api/v1/convert/ethiopic/5500-01-01?era=AA", gregorianOf, "0007-08-28", "Amete Alem 5500"},
		{"/api/v1/convert/gregorian/2024-09-11", ethiopicOf, "2017-01-01", "Gregorian to Ethiopian"},
		{"/api/v1/convert/gregorian/2000-01-01", ethiopicOf, "1992-04-22", "Millennium day"},
		{"/api/v1/jdn/2451545", gregorianOf, "2000-01-01", "JDN 2451545"},
	}

	for _, tc := range testCases {
		var day DayResponse
		if _, err := tr.getData(tc.path, &day); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		if got := tc.wantISO(day); got != tc.want {
			tr.recordError(tc.description, fmt.Sprintf("got %s, want %s", got, tc.want))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s", tc.description, tc.want))
		if tr.verbose {
			fmt.Printf("    JDN %d, %s, era %s, source %s\n", day.JDN, day.Weekday, day.Era, day.Source)
		}
	}
}

func gregorianOf(d DayResponse) string { return d.GregorianISO }
func ethiopicOf(d DayResponse) string  { return d.EthiopicISO }

func (tr *TestRunner) testInvalidDates() {
	tr.printSection("Invalid Input")

	paths := []string{
		"/api/v1/convert/ethiopic/2017-13-06",
		"/api/v1/convert/ethiopic/2017-14-01",
		"/api/v1/convert/gregorian/2023-02-29",
		"/api/v1/convert/gregorian/yesterday",
	}

	for _, path := range paths {
		status, resp, err := tr.do(http.MethodGet, path, nil)
		if err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		if status != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != "INVALID_DATE" {
			tr.recordError(path, fmt.Sprintf("expected 400 INVALID_DATE, got HTTP %d", status))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s rejected: %s", path, resp.Error.Message))
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Range")

	var out RangeResponse
	if _, err := tr.getData("/api/v1/convert/range?start=2024-09-01&end=2024-09-30", &out); err != nil {
		tr.recordError("Range", err.Error())
		return
	}
	if out.Count != 30 || len(out.Days) != 30 {
		tr.recordError("Range", fmt.Sprintf("expected 30 days, got %d", out.Count))
		return
	}
	for i := 1; i < len(out.Days); i++ {
		if out.Days[i].JDN != out.Days[i-1].JDN+1 {
			tr.recordError("Range", fmt.Sprintf("JDN gap after %d", out.Days[i-1].JDN))
			return
		}
	}
	tr.recordSuccess(fmt.Sprintf("September 2024 (%s)", out.Source))
}

func (tr *TestRunner) testImport() {
	tr.printSection("Day Table Import")

	body := map[string]string{"start": "2024-01-01", "end": "2024-12-31"}
	status, resp, err := tr.do(http.MethodPost, "/api/v1/admin/days/import", body)
	if err != nil {
		tr.recordError("Import", err.Error())
		return
	}
	if status != http.StatusCreated {
		msg := fmt.Sprintf("HTTP %d", status)
		if resp.Error != nil {
			msg += ": " + resp.Error.Message
		}
		tr.recordError("Import", msg)
		return
	}
	tr.recordSuccess("Imported 2024")

	var out RangeResponse
	if _, err := tr.getData("/api/v1/convert/range?start=2024-03-01&end=2024-03-31", &out); err != nil {
		tr.recordError("Range after import", err.Error())
		return
	}
	if out.Source != "table" {
		tr.recordError("Range after import", fmt.Sprintf("expected source table, got %s", out.Source))
		return
	}
	tr.recordSuccess("Range served from the day table")
}

// =============================================================================
// HTTP Helpers
// =============================================================================

func (tr *TestRunner) do(method, path string, body any) (int, *APIResponse, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	httpResp, err := tr.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp APIResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return httpResp.StatusCode, nil, fmt.Errorf("decode response: %w", err)
	}
	return httpResp.StatusCode, &resp, nil
}

func (tr *TestRunner) getData(path string, target any) (int, error) {
	status, resp, err := tr.do(http.MethodGet, path, nil)
	if err != nil {
		return status, err
	}
	if status != http.StatusOK || !resp.Success {
		if resp.Error != nil {
			return status, fmt.Errorf("HTTP %d: %s", status, resp.Error.Message)
		}
		return status, fmt.Errorf("HTTP %d", status)
	}
	return status, json.Unmarshal(resp.Data, target)
}

// =============================================================================
// Reporting
// =============================================================================

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount == 0 {
		fmt.Println("All checks passed! ✓")
		return
	}

	fmt.Println("Failures:")
	for _, err := range tr.errors {
		fmt.Printf("  • %s\n", err)
	}
	fmt.Println()
	fmt.Printf("Completed with %d failure(s)\n", tr.errorCount)
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "API key for admin routes")
	importDays := flag.Bool("import", false, "Also exercise the admin import route")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, *verbose)
	runner.Run(*importDays)

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
