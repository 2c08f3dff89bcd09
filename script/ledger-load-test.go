package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const subjectHeader = "X-Auth-Subject"

// envelope mirrors the API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

type account struct {
	ID        string `json:"id"`
	IsDefault bool   `json:"isDefault"`
}

type transaction struct {
	ID string `json:"id"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	SubjectStats       map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// TransactionScenario defines a transaction scenario
type TransactionScenario struct {
	Name   string
	Type   string
	Amount string
}

// subjectState tracks the account and the undeleted transactions of a caller
type subjectState struct {
	subject   string
	accountID string
	mu        sync.Mutex
	posted    []string
}

func (s *subjectState) remember(id string) {
	s.mu.Lock()
	s.posted = append(s.posted, id)
	s.mu.Unlock()
}

func (s *subjectState) drain() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.posted
	s.posted = nil
	return ids
}

type client struct {
	http    *http.Client
	baseURL string
}

func (c *client) call(ctx context.Context, method, path, subject string, body, out any) error {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(subjectHeader, subject)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if !env.Success {
		if env.Error != nil {
			return fmt.Errorf("%s: %s", env.Error.Kind, env.Error.Message)
		}
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// prepare registers the subject and finds or opens its default account
func (c *client) prepare(ctx context.Context, subject string) (*subjectState, error) {
	register := map[string]string{"email": subject + "@load.test", "name": subject}
	if err := c.call(ctx, http.MethodPost, "/v1/users", subject, register, nil); err != nil {
		return nil, fmt.Errorf("register %s: %w", subject, err)
	}

	var accounts []account
	if err := c.call(ctx, http.MethodGet, "/v1/accounts", subject, nil, &accounts); err != nil {
		return nil, fmt.Errorf("list accounts of %s: %w", subject, err)
	}
	for _, a := range accounts {
		if a.IsDefault {
			return &subjectState{subject: subject, accountID: a.ID}, nil
		}
	}

	var created account
	open := map[string]any{"name": "Load test", "type": "CURRENT", "balance": "10000.00", "isDefault": true}
	if err := c.call(ctx, http.MethodPost, "/v1/accounts", subject, open, &created); err != nil {
		return nil, fmt.Errorf("open account for %s: %w", subject, err)
	}
	return &subjectState{subject: subject, accountID: created.ID}, nil
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	subjectsStr := flag.String("u", "load-1,load-2,load-3", "Comma-separated list of subjects to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	bulkEvery := flag.Int("bulk", 10, "Issue a bulk delete every n requests (0 disables)")
	flag.Parse()

	var subjects []string
	for _, s := range strings.Split(*subjectsStr, ",") {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}
	if len(subjects) == 0 {
		subjects = []string{"load-1"}
	}

	scenarios := []TransactionScenario{
		{"Salary", "INCOME", "250.00"},
		{"Refund", "INCOME", "12.50"},
		{"Groceries", "EXPENSE", "45.90"},
		{"Rent", "EXPENSE", "120.00"},
		{"Coffee", "EXPENSE", "3.40"},
	}

	ctx := context.Background()
	api := &client{http: &http.Client{Timeout: 10 * time.Second}, baseURL: strings.TrimRight(*baseURL, "/")}

	states := make([]*subjectState, 0, len(subjects))
	for _, subject := range subjects {
		state, err := api.prepare(ctx, subject)
		if err != nil {
			fmt.Println("Setup failed:", err)
			return
		}
		states = append(states, state)
	}

	fmt.Printf("Load testing ledger API across %d subjects: %v\n", len(subjects), subjects)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d (bulk delete every %d)\n", *totalRequests, *bulkEvery)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		SubjectStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	startTime := time.Now()
	fmt.Println("Test running...")

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(*concurrency)

	for jobID := 0; jobID < *totalRequests; jobID++ {
		jobID := jobID
		group.Go(func() error {
			if *delayMs > 0 {
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
			state := states[rand.Intn(len(states))]

			var result TestResult
			if *bulkEvery > 0 && jobID%*bulkEvery == *bulkEvery-1 {
				result = bulkDelete(groupCtx, api, state)
			} else {
				result = post(groupCtx, api, state, scenarios[rand.Intn(len(scenarios))])
			}
			stats.record(state.subject, result)
			return nil
		})
	}
	_ = group.Wait()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func post(ctx context.Context, api *client, state *subjectState, scenario TransactionScenario) TestResult {
	body := map[string]any{
		"accountId":   state.accountID,
		"type":        scenario.Type,
		"amount":      scenario.Amount,
		"description": scenario.Name,
	}

	var created transaction
	start := time.Now()
	err := api.call(ctx, http.MethodPost, "/v1/transactions", state.subject, body, &created)
	result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start), Success: err == nil, Error: err}
	if err == nil {
		state.remember(created.ID)
	}
	return result
}

func bulkDelete(ctx context.Context, api *client, state *subjectState) TestResult {
	ids := state.drain()
	if ids == nil {
		ids = []string{}
	}

	start := time.Now()
	err := api.call(ctx, http.MethodPost, "/v1/transactions/bulk-delete", state.subject, map[string]any{"transactionIds": ids}, nil)
	return TestResult{Scenario: "Bulk delete", ResponseTime: time.Since(start), Success: err == nil, Error: err}
}

func (s *TestStats) record(subject string, result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.SubjectStats[subject]++
	s.ScenarioStats[result.Scenario]++

	if result.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SUBJECT DISTRIBUTION -----------------")
	for subject, count := range stats.SubjectStats {
		fmt.Printf("%-15s: %d requests\n", subject, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
