// SPDX-License-Identifier: MIT

// Package lapack: backend registry and one-time initialization.
//
// A Backend supplies the float64 compute routines behind the validated
// entry points. The in-module Reference backend is always registered and
// always works; accelerated backends register themselves (typically from
// an init function in their own package) and are selected by name through
// Initialize or Use. Initialization happens exactly once: if the requested
// backend is unavailable the package logs a warning and degrades to the
// reference backend rather than failing the program.

package lapack

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Backend is the float64 compute contract behind the validated entry
// points. Implementations receive pre-validated descriptors: dimensions
// agree, strides are legal, flag bytes are canonical. The int results
// follow the usual status convention, zero for success and a positive
// routine-specific 1-based index on numerical failure.
type Backend interface {
	// Name identifies the backend in logs and in the WriteInfo report.
	Name() string

	Dgetrf(a General[float64], ipiv []int) int
	Dgetrs(trans Trans, a General[float64], ipiv []int, b General[float64]) int
	Dgtsv(dl, d, du []float64, b General[float64]) int

	Dpotrf(uplo Uplo, a General[float64]) int
	Dpstrf(uplo Uplo, a General[float64], piv []int, tol float64) (rank, info int)
	Dsytrf(uplo Uplo, a General[float64], ipiv []int) int
	Dsytrs(uplo Uplo, a General[float64], ipiv []int, b General[float64]) int
	Dpttrf(d, e []float64) int
	Dpttrs(d, e []float64, b General[float64])
	Dtrtrs(uplo Uplo, trans Trans, diag Diag, a, b General[float64]) int

	Dgeqrf(a General[float64], tau []float64) int
	Dgeqp3(a General[float64], jpvt []int, tau []float64) int
	Dgelqf(a General[float64], tau []float64) int
	Dormqr(side Side, trans Trans, a General[float64], tau []float64, c General[float64]) int
	Dormlq(side Side, trans Trans, a General[float64], tau []float64, c General[float64]) int
	Dorgqr(a General[float64], tau []float64, q General[float64]) int
	Dorglq(a General[float64], tau []float64, q General[float64]) int

	Dgehrd(a General[float64], tau []float64) int
	Dorghr(a General[float64], tau []float64, q General[float64]) int
	Dsyev(uplo Uplo, a General[float64], w []float64, vecs bool) int
	Dhseqr(h, q General[float64], wr, wi []float64) int
	Dtrexc(t, q General[float64], ifst, ilst int) int
	Dgesvd(a General[float64], s []float64, u, vt General[float64]) int
}

// Info describes the backend selected by Initialize; WriteInfo renders it
// to any sink the caller supplies.
type Info struct {
	// Name is the active backend's registered name.
	Name string
	// Requested is the name asked for; equal to Name unless initialization
	// degraded to the reference backend.
	Requested string
}

// WriteInfo writes a short human-readable identification report to w.
func (inf Info) WriteInfo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "lapack backend: %s\n", inf.Name); err != nil {
		return err
	}
	if inf.Requested != inf.Name {
		_, err := fmt.Fprintf(w, "requested backend %q unavailable, degraded to %s\n",
			inf.Requested, inf.Name)
		return err
	}
	_, err := fmt.Fprintf(w, "precision: float64 (generic kernels serve other widths)\n")
	return err
}

// Option customizes Initialize.
type Option func(*initConfig)

type initConfig struct {
	backend string
	logger  *log.Logger
}

// WithBackend requests a registered backend by name. The zero value (and
// the name "reference") selects the in-module reference backend.
func WithBackend(name string) Option {
	return func(c *initConfig) { c.backend = name }
}

// WithLogger routes initialization diagnostics to the given logger instead
// of the package default.
func WithLogger(l *log.Logger) Option {
	return func(c *initConfig) { c.logger = l }
}

var (
	backendMu sync.RWMutex
	backends  = map[string]Backend{refBackendName: Reference{}}

	initOnce   sync.Once
	activeInfo Info
	active     Backend = Reference{}
)

// Register makes a backend selectable by name. Registering under an
// already-taken name replaces the previous entry; registration after
// Initialize has run does not change the active backend.
func Register(b Backend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backends[b.Name()] = b
}

// Use selects a registered backend immediately, bypassing the one-time
// Initialize path. Intended for tests and for programs that manage their
// own startup ordering.
func Use(name string) error {
	backendMu.Lock()
	defer backendMu.Unlock()
	b, ok := backends[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	active = b
	activeInfo = Info{Name: name, Requested: name}
	return nil
}

// Initialize selects the compute backend exactly once and reports what was
// chosen. Calling it again, with any options, returns the first result.
// An unavailable requested backend is not fatal: the package logs a
// warning, keeps the reference backend, and returns an Info whose
// Requested field records the miss alongside a wrapped ErrUnknownBackend.
func Initialize(opts ...Option) (Info, error) {
	var firstErr error
	initOnce.Do(func() {
		cfg := initConfig{backend: refBackendName, logger: log.Default()}
		for _, opt := range opts {
			opt(&cfg)
		}
		backendMu.Lock()
		defer backendMu.Unlock()
		b, ok := backends[cfg.backend]
		if !ok {
			cfg.logger.Warn("lapack: requested backend unavailable, using reference",
				"requested", cfg.backend)
			activeInfo = Info{Name: refBackendName, Requested: cfg.backend}
			firstErr = fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backend)
			return
		}
		active = b
		activeInfo = Info{Name: cfg.backend, Requested: cfg.backend}
	})
	backendMu.RLock()
	defer backendMu.RUnlock()
	return activeInfo, firstErr
}

// currentBackend triggers implicit initialization on first use and returns
// the active backend. Entry points with float64 descriptors route through
// it; other element widths always use the generic kernels.
func currentBackend() Backend {
	initOnce.Do(func() {
		backendMu.Lock()
		defer backendMu.Unlock()
		activeInfo = Info{Name: refBackendName, Requested: refBackendName}
	})
	backendMu.RLock()
	defer backendMu.RUnlock()
	return active
}

// accelerated reports whether dispatching to the active backend would do
// anything the generic kernels would not.
func accelerated() bool {
	b := currentBackend()
	_, isRef := b.(Reference)
	return !isRef
}
