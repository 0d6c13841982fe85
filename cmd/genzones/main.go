// Command genzones fetches the IANA zone1970.tab table and generates a Go
// source file containing the region zone catalogue as a slice literal.
//
// The table is downloaded from the IANA data server. If it is unavailable,
// the tz project's GitHub mirror is used instead. Only HTTPS URLs on an
// allow-listed host are accepted, including one given with -url.
//
// Usage:
//
//	go run main.go -output ../../zones_data.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	primaryURL  = "https://data.iana.org/time-zones/tzdb/zone1970.tab"
	fallbackURL = "https://raw.githubusercontent.com/eggert/tz/main/zone1970.tab"

	minExpectedRows = 300

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum response size to prevent memory exhaustion.
	maxTabResponseSize = 1 * 1024 * 1024

	userAgent = "zoned-generator/1.0 (https://github.com/rabitt1ove/zoned)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedHosts is the set of hostnames the table may be downloaded from.
var allowedHosts = map[string]bool{
	"data.iana.org":             true,
	"www.iana.org":              true,
	"raw.githubusercontent.com": true,
}

type zone struct {
	name      string
	countries []string
	comment   string
}

func main() {
	output := flag.String("output", "zones_data.go", "output file path")
	source := flag.String("url", "", "download from this URL instead of the IANA defaults")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genzones: ")

	client := &http.Client{Timeout: httpTimeout}

	urls := []string{primaryURL, fallbackURL}
	if *source != "" {
		urls = []string{*source}
	}

	body, err := fetchTab(client, urls...)
	if err != nil {
		log.Fatalf("failed to fetch zone table: %v", err)
	}

	zones, err := parseTab(body)
	if err != nil {
		log.Fatalf("failed to parse zone table: %v", err)
	}

	if len(zones) < minExpectedRows {
		log.Fatalf("validation failed: expected at least %d rows, got %d", minExpectedRows, len(zones))
	}

	src, err := generate(zones)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %d zones to %s", len(zones), *output)
}

// validateURL checks that a URL is HTTPS and points to an allowed host.
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchTab validates the download URLs and fetches the table from the
// first one that answers.
func fetchTab(client *http.Client, urls ...string) (io.Reader, error) {
	for _, u := range urls {
		if err := validateURL(u); err != nil {
			return nil, err
		}
	}
	return fetchWithFallbacks(client, urls...)
}

// fetchWithFallbacks tries each URL in order, each with retries.
func fetchWithFallbacks(client *http.Client, urls ...string) (io.Reader, error) {
	var lastErr error
	for _, u := range urls {
		reader, err := fetchWithRetry(client, u)
		if err != nil {
			log.Printf("  %s failed: %v", u, err)
			lastErr = err
			continue
		}
		return reader, nil
	}
	return nil, fmt.Errorf("all URLs failed, last error: %w", lastErr)
}

// fetchWithRetry fetches a URL with exponential backoff retries.
func fetchWithRetry(client *http.Client, url string) (io.Reader, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			time.Sleep(delay)
		}

		log.Printf("fetching %s", url)
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			log.Printf("  failed: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode == http.StatusServiceUnavailable ||
			resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		defer resp.Body.Close()
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxTabResponseSize+1))
		if err != nil {
			return nil, fmt.Errorf("GET %s: reading body: %w", url, err)
		}
		if len(data) > maxTabResponseSize {
			return nil, fmt.Errorf("GET %s: response exceeds %d bytes", url, maxTabResponseSize)
		}
		return strings.NewReader(string(data)), nil
	}
	return nil, lastErr
}

// parseTab parses zone1970.tab: tab-separated country codes, coordinates,
// zone name and an optional comment. Lines starting with # are skipped.
func parseTab(r io.Reader) ([]zone, error) {
	var zones []zone
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 columns, got %d", lineNum, len(fields))
		}

		name := strings.TrimSpace(fields[2])
		if !strings.Contains(name, "/") {
			return nil, fmt.Errorf("line %d: invalid zone name %q", lineNum, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: duplicate zone %q", lineNum, name)
		}
		seen[name] = true

		var countries []string
		for _, code := range strings.Split(fields[0], ",") {
			cc, err := countryCode(code)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			countries = append(countries, cc)
		}

		var comment string
		if len(fields) > 3 {
			comment = strings.TrimSpace(fields[3])
		}

		zones = append(zones, zone{name: name, countries: countries, comment: comment})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
	}

	return zones, nil
}

// countryCode validates an ISO 3166 alpha-2 code and returns it in canonical case.
func countryCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return "", fmt.Errorf("invalid country code %q", code)
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return "", fmt.Errorf("invalid country code %q: %w", code, err)
	}
	return region.String(), nil
}

// area returns the first path element of a zone name (e.g., "Europe").
func area(name string) string {
	a, _, _ := strings.Cut(name, "/")
	return a
}

// generate produces a formatted Go source file containing the zone catalogue.
func generate(zones []zone) ([]byte, error) {
	sort.Slice(zones, func(i, j int) bool {
		return zones[i].name < zones[j].name
	})

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genzones; DO NOT EDIT.\n\n")
	b.WriteString("package zoned\n\n")
	b.WriteString("var builtinZones = []zoneEntry{\n")

	currentArea := ""
	for _, z := range zones {
		if a := area(z.name); a != currentArea {
			if currentArea != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\t// %s\n", a)
			currentArea = a
		}
		quoted := make([]string, len(z.countries))
		for i, c := range z.countries {
			quoted[i] = fmt.Sprintf("%q", c)
		}
		fmt.Fprintf(&b, "\t{%q, []string{%s}, %q},\n", z.name, strings.Join(quoted, ", "), z.comment)
	}

	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
