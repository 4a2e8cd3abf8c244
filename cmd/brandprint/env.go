package main

import (
	"context"
	"io"
	"os"

	"github.com/alnah/go-brandprint"
)

// Renderer is a closable document renderer, usually a converter pool.
type Renderer interface {
	Convert(ctx context.Context, input brandprint.Input) (*brandprint.Result, error)
	Close() error
}

var _ Renderer = (*brandprint.ConverterPool)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewRenderer builds the renderer for a command. size is the number of
	// browsers allowed to run at once.
	NewRenderer func(size int, opts ...brandprint.Option) Renderer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewRenderer: func(size int, opts ...brandprint.Option) Renderer {
			return brandprint.NewConverterPool(size, opts...)
		},
	}
}
