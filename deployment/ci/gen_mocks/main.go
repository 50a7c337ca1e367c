package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// sources lists the files whose interfaces are mocked. Mocks are written next to
// the source, in the same package, as mock_<name>.go.
var sources = map[string]string{
	"internal/kvstore/store.go":           "mock_store.go",
	"internal/catalog/orchestrator.go":    "mock_fetcher.go",
	"internal/app/catalogapp/handlers.go": "mock_catalog.go",
	"internal/app/userapp/handlers.go":    "mock_users.go",
}

// go run ./deployment/ci/gen_mocks
func main() {
	timeStart := time.Now()

	const numWorkers = 4

	jobs := make(chan string, len(sources))
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for src := range jobs {
				if err := generate(src, sources[src]); err != nil {
					mu.Lock()
					failed++
					mu.Unlock()
					fmt.Fprintf(os.Stderr, "Error generating mock for %s: %v\n", src, err)
					continue
				}
				fmt.Printf("Mock generated: %s\n", filepath.Join(filepath.Dir(src), sources[src]))
			}
		}()
	}

	for src := range sources {
		jobs <- src
	}
	close(jobs)
	wg.Wait()

	fmt.Printf("\nTotal execution time: %s\n", time.Since(timeStart))
	if failed > 0 {
		os.Exit(1)
	}
}

func generate(src, dest string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	pkg := extractPackage(string(content))
	if pkg == "" {
		return fmt.Errorf("no package clause")
	}

	cmd := exec.Command("go", "run", "go.uber.org/mock/mockgen@v0.5.2",
		"-source="+src,
		"-destination="+filepath.Join(filepath.Dir(src), dest),
		"-package="+pkg,
	)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func extractPackage(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			return strings.TrimPrefix(line, "package ")
		}
	}
	return ""
}
