package qtable_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/theflywheel/qtable"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	RunID     string             `json:"run_id"`
	Timestamp string             `json:"timestamp"`
	CommitID  string             `json:"commit_id"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// shuffledKeys returns every valid key ordered by the xxhash of its decimal
// form, a fixed permutation that scatters neighbouring keys.
func shuffledKeys() []int {
	keys := make([]int, 0, qtable.MaxKey-qtable.MinKey+1)
	for k := qtable.MinKey; k <= qtable.MaxKey; k++ {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return xxhash.Sum64String(strconv.Itoa(keys[i])) < xxhash.Sum64String(strconv.Itoa(keys[j]))
	})
	return keys
}

// gitInfo reads the branch and short commit id from the repository root.
func gitInfo(repoRoot string) (commitID, branch string) {
	commitID = "local"
	branch = "dev"

	gitHead, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return
	}
	headContent := strings.TrimSpace(string(gitHead))

	// For branches it looks like "ref: refs/heads/main"
	if !strings.HasPrefix(headContent, "ref: ") {
		if len(headContent) >= 8 {
			commitID = headContent[:8]
		}
		return
	}
	branch = strings.TrimPrefix(headContent, "ref: refs/heads/")

	refPath := strings.TrimPrefix(headContent, "ref: ")
	if commitData, err := os.ReadFile(filepath.Join(repoRoot, ".git", refPath)); err == nil {
		commitID = strings.TrimSpace(string(commitData))
		if len(commitID) >= 8 {
			commitID = commitID[:8]
		}
	}
	return
}

// saveBenchmarkResult saves a benchmark result to the benchmark_history directory
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Get the repository root by going up one level (from bench to repo root)
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	commitID, branch := gitInfo(repoRoot)

	summary := BenchmarkSummary{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	// Merge with existing results if available
	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existingSummary BenchmarkSummary
		if err := json.Unmarshal(existingData, &existingSummary); err == nil {
			summary.Results = append(existingSummary.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.WriteFile(latestFile, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", latestFile)
	return nil
}
