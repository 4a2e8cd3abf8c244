package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alnah/go-brandprint"
)

// fakeRenderer generates real documents and canned PDFs.
type fakeRenderer struct {
	mu     sync.Mutex
	err    error
	size   int
	inputs []brandprint.Input
	closed bool
}

func (f *fakeRenderer) Convert(_ context.Context, in brandprint.Input) (*brandprint.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	res := &brandprint.Result{HTML: []byte(brandprint.Generate(in.Request))}
	if !in.HTMLOnly {
		res.PDF = []byte("%PDF-1.7 fake")
	}
	return res, nil
}

func (f *fakeRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// testEnv returns an Environment that captures output and renders with r.
func testEnv(r *fakeRenderer) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Stdout: stdout,
		Stderr: stderr,
		NewRenderer: func(size int, _ ...brandprint.Option) Renderer {
			r.mu.Lock()
			r.size = size
			r.mu.Unlock()
			return r
		},
	}, stdout, stderr
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}
