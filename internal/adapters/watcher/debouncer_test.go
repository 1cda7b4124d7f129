package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/localci/internal/adapters/watcher"
)

func TestDebouncer_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string
		d := watcher.NewDebouncer(200*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, paths)
		})

		d.Add("/r/.circleci/config.yml")
		time.Sleep(100 * time.Millisecond)
		d.Add("/r/.circleci/config.yml~")
		d.Add("/r/.circleci/config.yml")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Empty(t, calls, "window restarts on every event")
		mu.Unlock()

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, [][]string{{"/r/.circleci/config.yml", "/r/.circleci/config.yml~"}}, calls)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(time.Second, func([]string) { called = true })

		d.Add("a")
		d.Stop()
		time.Sleep(2 * time.Second)
		synctest.Wait()

		assert.False(t, called)
	})
}
