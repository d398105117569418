package backendtest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// ErrDropped is returned by a DropTransport for every dropped request.
var ErrDropped = errors.New("backendtest: connection dropped")

// DropTransport fails requests whose path ends with one of the dropped
// suffixes before they leave the process, as if the network were down.
type DropTransport struct {
	Base http.RoundTripper

	mu      sync.Mutex
	dropAll bool
	paths   []string
}

func NewDropTransport() *DropTransport {
	return &DropTransport{Base: http.DefaultTransport}
}

// Drop adds path suffixes, e.g. "/atribuicoes" or "/auth/logout".
func (t *DropTransport) Drop(paths ...string) *DropTransport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths = append(t.paths, paths...)
	return t
}

func (t *DropTransport) DropAll(drop bool) *DropTransport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dropAll = drop
	return t
}

func (t *DropTransport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dropAll = false
	t.paths = nil
}

func (t *DropTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.dropped(req.URL.Path) {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, fmt.Errorf("%w: %s %s", ErrDropped, req.Method, req.URL.Path)
	}
	return t.Base.RoundTrip(req)
}

func (t *DropTransport) dropped(path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dropAll {
		return true
	}
	for _, suffix := range t.paths {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
