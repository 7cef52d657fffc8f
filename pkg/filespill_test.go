package pkg

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type spillRecord struct {
	Name   string
	Count  int
	Failed bool
}

func TestFileSpill(t *testing.T) {
	t.Run("NewFileSpill creates file in dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewFileSpill[int](dir)
		require.NoError(t, err)
		defer spill.Remove()

		require.Contains(t, spill.Path(), dir)
		require.Equal(t, uint64(0), spill.Len())
	})

	t.Run("Append and Range preserve order", func(t *testing.T) {
		spill, err := NewFileSpill[string](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		for _, s := range []string{"first", "second", "third"} {
			require.NoError(t, spill.Append(s))
		}

		var got []string
		err = spill.Range(func(index uint64, item string) error {
			require.Equal(t, uint64(len(got)), index)
			got = append(got, item)

			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"first", "second", "third"}, got)
	})

	t.Run("Range does not leak fields between items", func(t *testing.T) {
		spill, err := NewFileSpill[spillRecord](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		require.NoError(t, spill.Append(spillRecord{Name: "a", Count: 3, Failed: true}))
		require.NoError(t, spill.Append(spillRecord{Name: "b"}))

		var got []spillRecord
		require.NoError(t, spill.Range(func(_ uint64, item spillRecord) error {
			got = append(got, item)
			return nil
		}))

		require.Equal(t, spillRecord{Name: "b"}, got[1])
	})

	t.Run("Range callback error stops iteration", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		for i := range 5 {
			require.NoError(t, spill.Append(i))
		}

		stop := errors.New("stop")
		visited := 0

		err = spill.Range(func(index uint64, _ int) error {
			visited++
			if index == 2 {
				return stop
			}

			return nil
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 3, visited)
	})

	t.Run("Append after Close fails but Range still works", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		require.NoError(t, spill.Append(1))
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close())
		require.ErrorIs(t, spill.Append(2), ErrSpillClosed)

		count := 0
		require.NoError(t, spill.Range(func(uint64, int) error { count++; return nil }))
		require.Equal(t, 1, count)
	})

	t.Run("Remove deletes the file", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)

		require.NoError(t, spill.Remove())

		_, err = os.Stat(spill.Path())
		require.True(t, os.IsNotExist(err))
	})

	t.Run("concurrent appends are all recorded", func(t *testing.T) {
		spill, err := NewFileSpill[int](t.TempDir())
		require.NoError(t, err)
		defer spill.Remove()

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)

			go func() {
				defer wg.Done()
				_ = spill.Append(i)
			}()
		}

		wg.Wait()

		seen := map[int]bool{}
		require.NoError(t, spill.Range(func(_ uint64, item int) error {
			seen[item] = true
			return nil
		}))
		require.Len(t, seen, 50)
	})

	t.Run("empty dir falls back to temp", func(t *testing.T) {
		spill, err := NewFileSpill[int]("")
		require.NoError(t, err)
		defer spill.Remove()

		require.Contains(t, spill.Path(), "gauntlet-spill")
	})
}
