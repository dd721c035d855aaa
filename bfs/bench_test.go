package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/sprout/bfs"
	"github.com/katalvlaran/sprout/core"
)

// BenchmarkWalk_Chain measures a walk along a chain of N vertices.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	g := chain(N + 1)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(ctx, g, 0)
	}
}

// BenchmarkWalk_BinaryTree walks a complete binary tree of depth 10.
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const depth = 10
	n := (1 << depth) - 1
	g := core.NewGraph(n)
	for i := 0; 2*i+2 < n; i++ {
		_ = g.AddEdge(i, 2*i+1, 1)
		_ = g.AddEdge(i, 2*i+2, 1)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(ctx, g, 0)
	}
}
