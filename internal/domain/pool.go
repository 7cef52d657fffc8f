package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gauntlet.dev/pkg/gauntlet/internal/adapter"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Environment is one isolated copy of the subject project.
type Environment struct {
	Ordinal int
	Dir     m.Path

	inUse bool
}

// Pool is a fixed set of environments created once per session.
type Pool struct {
	fs     adapter.SourceFSAdapter
	source m.Path

	mu       sync.Mutex
	envs     []*Environment
	released chan struct{} // closed and replaced on every release
	closed   bool
}

// NewPool copies source into size fresh temp directories. Any failure
// removes the copies made so far and is fatal for the session.
func NewPool(ctx context.Context, fs adapter.SourceFSAdapter, source m.Path, size int) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("pool size must be positive, got %d", size)
	}

	envs := make([]*Environment, size)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(size)

	for i := range envs {
		group.Go(func() error {
			dir, err := fs.CreateTempDir(groupCtx, fmt.Sprintf("gauntlet-env-%d-*", i))
			if err != nil {
				return fmt.Errorf("create environment %d: %w", i, err)
			}

			envs[i] = &Environment{Ordinal: i, Dir: dir}

			if err := fs.CopyDir(groupCtx, source, dir); err != nil {
				return fmt.Errorf("copy project into environment %d: %w", i, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to build execution pool", "source", source, "size", size, "error", err)

		for _, env := range envs {
			if env == nil {
				continue
			}

			if rmErr := fs.RemoveAll(context.WithoutCancel(ctx), env.Dir); rmErr != nil {
				slog.Error("Failed to remove partial environment", "dir", env.Dir, "error", rmErr)
			}
		}

		return nil, err
	}

	return &Pool{
		fs:       fs,
		source:   source,
		envs:     envs,
		released: make(chan struct{}),
	}, nil
}

// Size returns the number of environments.
func (p *Pool) Size() int {
	return len(p.envs)
}

// Free returns the number of environments not in use.
func (p *Pool) Free() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	free := 0

	for _, env := range p.envs {
		if !env.inUse {
			free++
		}
	}

	return free
}

// TakeOne reserves a free environment without blocking. The environment is
// unavailable to Acquire until Return.
func (p *Pool) TakeOne() (*Environment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if env := p.claim(); env != nil {
		return env, nil
	}

	return nil, ErrPoolExhausted
}

// Return puts back an environment obtained with TakeOne.
func (p *Pool) Return(env *Environment) {
	p.Release(env)
}

// Acquire blocks until an environment is free, then marks it in use.
func (p *Pool) Acquire(ctx context.Context) (*Environment, error) {
	start := time.Now()

	defer func() { poolWaitSeconds.Observe(time.Since(start).Seconds()) }()

	for {
		p.mu.Lock()

		if p.closed {
			p.mu.Unlock()
			return nil, ErrPoolClosed
		}

		if env := p.claim(); env != nil {
			p.mu.Unlock()
			return env, nil
		}

		wait := p.released
		p.mu.Unlock()

		// A wakeup does not promise a free environment; rescan.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-wait:
		}
	}
}

// claim must be called with p.mu held.
func (p *Pool) claim() *Environment {
	for _, env := range p.envs {
		if !env.inUse {
			env.inUse = true
			return env
		}
	}

	return nil
}

// Release marks env free and wakes every waiting Acquire.
func (p *Pool) Release(env *Environment) {
	if env == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	env.inUse = false
	p.broadcast()
}

func (p *Pool) broadcast() {
	close(p.released)
	p.released = make(chan struct{})
}

// Restore copies the pristine file at rel from the project into env and
// verifies the copy by content hash.
func (p *Pool) Restore(ctx context.Context, env *Environment, rel m.Path) error {
	src := p.fs.JoinPath(ctx, string(p.source), string(rel))
	dst := p.fs.JoinPath(ctx, string(env.Dir), string(rel))

	if err := p.fs.CopyFile(ctx, src, dst); err != nil {
		slog.Error("Failed to restore environment", "env", env.Ordinal, "path", dst, "error", err)
		return fmt.Errorf("restore environment %d: %w", env.Ordinal, err)
	}

	want, err := p.fs.HashFile(ctx, src)
	if err != nil {
		return fmt.Errorf("restore environment %d: hash project image: %w", env.Ordinal, err)
	}

	got, err := p.fs.HashFile(ctx, dst)
	if err != nil {
		return fmt.Errorf("restore environment %d: hash restored image: %w", env.Ordinal, err)
	}

	if got != want {
		slog.Error("Restored image differs from project copy", "env", env.Ordinal, "path", dst, "want", want, "got", got)
		return fmt.Errorf("restore environment %d: %s does not match the project copy", env.Ordinal, dst)
	}

	slog.Warn("Restored environment from project copy", "env", env.Ordinal, "path", dst)

	return nil
}

// Close wakes blocked acquirers and removes every environment directory.
func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()
		return nil
	}

	p.closed = true
	p.broadcast()
	p.mu.Unlock()

	var errs []error

	for _, env := range p.envs {
		if err := p.fs.RemoveAll(ctx, env.Dir); err != nil {
			slog.Error("Failed to remove environment", "dir", env.Dir, "error", err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
