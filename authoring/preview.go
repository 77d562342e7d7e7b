package authoring

import (
	"encoding/base64"
	"io"
	"sync"
)

// PreviewLoader turns selected files into data-URL previews asynchronously.
// Reads are not cancelled, but each Load bumps a generation counter and a
// completed read only applies if it is still the newest — a slow earlier
// read can never overwrite a later selection.
type PreviewLoader struct {
	mu  sync.Mutex
	gen uint64
	wg  sync.WaitGroup

	OnPreview func(dataURL string)
	OnError   func(err error)
}

// Load starts reading the file in the background. The latest call wins.
func (l *PreviewLoader) Load(name, mimeType string, r io.Reader) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		data, err := io.ReadAll(r)

		// Applying under the lock keeps check-then-apply atomic with
		// respect to a concurrent newer Load.
		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen {
			return
		}

		if err != nil {
			if l.OnError != nil {
				l.OnError(err)
			}
			return
		}
		if l.OnPreview != nil {
			l.OnPreview(dataURL(mimeType, data))
		}
	}()
}

// Wait blocks until in-flight reads settle. Test hook.
func (l *PreviewLoader) Wait() {
	l.wg.Wait()
}

func dataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
