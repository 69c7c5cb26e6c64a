package tabular

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Station-Manager/tabular/dataset"
	"github.com/stretchr/testify/assert"
)

func TestFill_ConcurrentFillsAndRegistration(t *testing.T) {
	t.Parallel()
	ad := New()
	ad.RegisterConverter("A", MapString(strings.ToUpper))
	source := []pair{{A: "john", B: "n1"}, {A: "jane", B: "n2"}}

	var start sync.WaitGroup
	start.Add(1)

	var done atomic.Int32
	readers := runtime.GOMAXPROCS(0) * 3
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	errs := make(chan string, readers*4)

	// Writer goroutine: continuously registering converters while readers fill
	go func() {
		defer wg.Done()
		start.Wait()
		for i := 0; i < 500; i++ {
			ad.RegisterConverter("B", func(v any) (any, error) { return v, nil })
			if done.Load() == 1 {
				return
			}
		}
	}()

	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			start.Wait()
			for i := 0; i < 200; i++ {
				table := dataset.NewDataTable("pairs")
				if err := ad.Fill(table, source); err != nil {
					errs <- fmt.Sprintf("fill error: %v", err)
					return
				}
				if table.RowCount() != 2 {
					errs <- fmt.Sprintf("row count: got %d", table.RowCount())
					return
				}
				row, _ := table.Row(0)
				if v, _ := row.Get("A"); v != "JOHN" {
					errs <- fmt.Sprintf("A not uppercased: got %q", v)
					return
				}
				if v, _ := row.Get("B"); v != "n1" {
					errs <- fmt.Sprintf("B mismatch: got %q", v)
					return
				}
			}
		}()
	}

	start.Done()
	wg.Wait()
	done.Store(1)
	close(errs)

	for e := range errs {
		t.Error(e)
	}
	_, ok := ad.registry().byField["B"]
	assert.True(t, ok)
}
