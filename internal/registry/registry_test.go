// SPDX-License-Identifier: MIT
package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixgen/internal/registry"
	"github.com/katalvlaran/matrixgen/matrix"
	"github.com/katalvlaran/matrixgen/scalar"
)

func dense(t *testing.T, rows ...[]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromStrings(rows)
	require.NoError(t, err)

	return m
}

func TestPutGetCopies(t *testing.T) {
	t.Parallel()

	r := registry.New()
	m := dense(t, []string{"1", "2"})
	replaced, err := r.Put("A", m)
	require.NoError(t, err)
	assert.False(t, replaced)

	// Mutating the original must not leak into the registry.
	require.NoError(t, m.Set(0, 0, scalar.Int(9)))
	got, err := r.Get("A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}}, got.DisplayGrid())

	// Nor must mutating a fetched copy.
	require.NoError(t, got.Set(0, 1, scalar.Int(7)))
	again, err := r.Get("A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}}, again.DisplayGrid())

	replaced, err = r.Put("A", got)
	require.NoError(t, err)
	assert.True(t, replaced)
}

func TestNamesAndErrors(t *testing.T) {
	t.Parallel()

	r := registry.New()
	for _, bad := range []string{"", "1a", "a b", "a-b", string(make([]byte, 65))} {
		_, err := r.Put(bad, dense(t, []string{"1"}))
		assert.ErrorIs(t, err, registry.ErrInvalidName, "%q", bad)
	}
	for _, good := range []string{"A", "_tmp", "m2", "Матрица"} {
		assert.NoError(t, registry.ValidateName(good), good)
	}

	_, err := r.Put("A", nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)
	assert.ErrorIs(t, r.Delete("missing"), registry.ErrNotFound)
}

func TestListIsSorted(t *testing.T) {
	t.Parallel()

	r := registry.New()
	for _, name := range []string{"C", "A", "B"} {
		_, err := r.Put(name, dense(t, []string{"1", "2", "3"}))
		require.NoError(t, err)
	}
	require.NoError(t, r.Delete("B"))

	assert.Equal(t, []registry.Entry{
		{Name: "A", Rows: 1, Cols: 3},
		{Name: "C", Rows: 1, Cols: 3},
	}, r.List())
	assert.Equal(t, 2, r.Len())
}

func TestHistory(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := registry.New(registry.WithHistoryLimit(2), registry.WithClock(func() time.Time { return stamp }))

	first := r.Record("add", []string{"A", "B"}, "C", nil)
	assert.Equal(t, uint64(1), first.Seq)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.Equal(t, stamp, first.Time)
	assert.True(t, first.OK())

	failed := r.Record("mul", []string{"A", "C"}, "D", errors.New("shape"))
	assert.False(t, failed.OK())
	assert.Empty(t, failed.Result)

	r.Record("t", []string{"A"}, "E", nil)

	h := r.History()
	require.Len(t, h, 2, "limit drops the oldest record")
	assert.Equal(t, []uint64{2, 3}, []uint64{h[0].Seq, h[1].Seq})
	assert.Equal(t, "shape", h[0].Err)

	r.ClearHistory()
	assert.Empty(t, r.History())
	assert.Equal(t, uint64(4), r.Record("det", nil, "1", nil).Seq)

	assert.Panics(t, func() { registry.WithHistoryLimit(-1) })
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := registry.New()
	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			name := fmt.Sprintf("M%d", id)
			m, err := matrix.NewIdentity(2)
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := r.Put(name, m); err != nil {
				t.Error(err)
				return
			}
			if _, err := r.Get(name); err != nil {
				t.Error(err)
			}
			r.Record("new", nil, name, nil)
			_ = r.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers, r.Len())
	h := r.History()
	require.Len(t, h, workers)
	seen := map[uint64]bool{}
	for _, rec := range h {
		seen[rec.Seq] = true
	}
	assert.Len(t, seen, workers, "sequence numbers are unique")
}
