package main

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// go run ./cmd/loadtest --target=http://localhost:8080 --rate=50 --duration=30s
func main() {
	target := flag.String("target", "http://localhost:8080", "gateway base url")
	freq := flag.Int("rate", 50, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "test duration")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(createTargeter(strings.TrimRight(*target, "/")), rate, *duration, "catalog views") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Report ===")
	reporter := vegeta.NewTextReporter(&metrics)
	reporter.Report(os.Stdout)
}

// createTargeter spreads requests over the cached views, mostly Home with a random
// title search, so concurrent misses exercise the shared refresh.
func createTargeter(base string) vegeta.Targeter {
	paths := []string{"/api/v1/genres", "/api/v1/movies/bestrated"}

	return func(tgt *vegeta.Target) error {
		path := "/api/v1/home?q=" + url.QueryEscape(gofakeit.Word())
		if n := gofakeit.Number(0, 9); n < len(paths) {
			path = paths[n]
		}

		tgt.Method = http.MethodGet
		tgt.URL = base + path
		tgt.Header = http.Header{
			"Accept":       {"application/json"},
			"X-Request-ID": {uuid.New().String()},
		}

		return nil
	}
}
