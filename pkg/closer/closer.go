package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func — функция закрытия ресурса.
type Func func(ctx context.Context) error

type entry struct {
	name string
	fn   Func
}

// Closer закрывает зарегистрированные ресурсы в обратном порядке (LIFO).
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	entries       []entry
	forcedTimeout time.Duration
}

// NewCloser создаёт Closer. forcedTimeout — время на принудительное закрытие
// ресурсов, не успевших закрыться до отмены контекста Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	if forcedTimeout <= 0 {
		forcedTimeout = 2 * time.Second
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует ресурс под именем name.
func (c *Closer) Add(name string, fn Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: fn})
}

// Close закрывает ресурсы последовательно, начиная с последнего добавленного.
// Если ctx отменён раньше, оставшиеся ресурсы закрываются параллельно с forcedTimeout.
// Повторные вызовы ничего не делают.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		entries := append([]entry(nil), c.entries...)
		c.mu.Unlock()

		var errs []string
		for i := len(entries) - 1; i >= 0; i-- {
			done := make(chan error, 1)
			go func(en entry) { done <- en.fn(ctx) }(entries[i])

			select {
			case cerr := <-done:
				if cerr != nil {
					errs = append(errs, fmt.Sprintf("[!] %s: %v", entries[i].name, cerr))
				}
			case <-ctx.Done():
				errs = append(errs, c.forceClose(entries[:i])...)
				err = fmt.Errorf("shutdown interrupted at %q:\n%s", entries[i].name, strings.Join(errs, "\n"))
				return
			}
		}

		if len(errs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
		}
	})

	return err
}

func (c *Closer) forceClose(entries []entry) []string {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []string
	)
	for _, en := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := en.fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("[FORCED] %s: %v", en.name, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errs
}
