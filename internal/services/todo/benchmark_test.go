package todo

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/testutil"
)

// ============================================================================
// BENCHMARK SETUP HELPERS
// ============================================================================

// setupBenchmarkService creates a service over an in-memory database holding n todos,
// every third one done
func setupBenchmarkService(b *testing.B, n int) Service {
	b.Helper()
	db := testutil.SetupTestDB(b)
	for i := range n {
		testutil.CreateTestTodo(b, db, fmt.Sprintf("benchmark task %d", i), i%3 == 0)
	}
	return NewService(database.NewTodoRepo(db, database.SQLite))
}

// ============================================================================
// BENCHMARKS
// ============================================================================

func BenchmarkAdd(b *testing.B) {
	svc := setupBenchmarkService(b, 0)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Add(ctx, "benchmark task"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGetAll(b *testing.B) {
	svc := setupBenchmarkService(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.GetAll(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch(b *testing.B) {
	svc := setupBenchmarkService(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Search(ctx, "task 9"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList(b *testing.B) {
	svc := setupBenchmarkService(b, 1000)
	ctx := context.Background()
	pending := false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.List(ctx, ListOptions{Done: &pending, Page: 3, Limit: 20}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStats(b *testing.B) {
	svc := setupBenchmarkService(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Stats(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
