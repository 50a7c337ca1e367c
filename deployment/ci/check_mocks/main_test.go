package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoRoot = "../../.."

func TestRepositoryMocksInSync(t *testing.T) {
	mocks, err := findMocks(repoRoot)
	require.NoError(t, err)
	assert.Contains(t, mocks, filepath.Join("internal", "kvstore", "mock_store.go"))
	assert.Contains(t, mocks, filepath.Join("internal", "catalog", "mock_fetcher.go"))

	for _, mock := range mocks {
		problems, err := checkMock(repoRoot, mock)
		require.NoError(t, err, mock)
		assert.Empty(t, problems, mock)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const storeSource = `package store

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
`

func TestCheckMock(t *testing.T) {
	testCases := []struct {
		name     string
		mock     string
		expected []string
	}{
		{
			name: "in sync",
			mock: `// Source: store/store.go
package store

import "context"

type MockStore struct{}
type MockStoreMockRecorder struct{}

func (m *MockStore) EXPECT() *MockStoreMockRecorder { return nil }
func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (m *MockStore) Set(ctx context.Context, key string, value []byte) error { return nil }
func (mr *MockStoreMockRecorder) Get(ctx, key any) {}
`,
		},
		{
			name: "method added to interface",
			mock: `// Source: store/store.go
package store

import "context"

type MockStore struct{}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
`,
			expected: []string{"MockStore is missing Set"},
		},
		{
			name: "signature and removed method drift",
			mock: `// Source: store/store.go
package store

import "context"

type MockStore struct{}

func (m *MockStore) Get(ctx context.Context) ([]byte, error) { return nil, nil }
func (m *MockStore) Set(ctx context.Context, key string, value []byte) error { return nil }
func (m *MockStore) Delete(ctx context.Context, key string) error { return nil }
`,
			expected: []string{
				"MockStore.Delete is not on interface Store",
				"MockStore.Get takes 1 params, interface takes 2",
			},
		},
		{
			name:     "wrong package",
			mock:     "// Source: store/store.go\npackage other\n",
			expected: []string{"package other does not match source package store"},
		},
		{
			name:     "interface never mocked",
			mock:     "// Source: store/store.go\npackage store\n",
			expected: []string{"no MockStore for interface Store"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "store/store.go", storeSource)
			writeFile(t, root, "store/mock_store.go", tc.mock)

			problems, err := checkMock(root, filepath.Join("store", "mock_store.go"))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, problems)
		})
	}
}

func TestCheckMock_MissingSourceHeader(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "store/mock_store.go", "package store\n")

	_, err := checkMock(root, filepath.Join("store", "mock_store.go"))
	assert.Error(t, err)
}

func TestFindMocks_SkipsVendoredTrees(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "internal/a/mock_a.go", "package a\n")
	writeFile(t, root, "vendor/b/mock_b.go", "package b\n")
	writeFile(t, root, "_examples/c/mock_c.go", "package c\n")
	writeFile(t, root, "internal/a/a.go", "package a\n")

	mocks, err := findMocks(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("internal", "a", "mock_a.go")}, mocks)
}
