// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package exportpoller provides a worker that samples an export's status
// until it reaches a terminal state. It backs the status-check trigger
// and the CLI watch command; the scheduled lambda path never uses it.
package exportpoller

import (
	"context"
	"sync"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/retry"
	"gopkg.in/tomb.v2"

	"github.com/canonical/dynamoexport/core/export"
	corelogger "github.com/canonical/dynamoexport/core/logger"
	"github.com/canonical/dynamoexport/internal/ddbclient"
)

const (
	// defaultPollMinInterval is the delay before the second status sample.
	defaultPollMinInterval = 10 * time.Second
	// defaultPollMaxInterval caps the backoff between samples. Exports of
	// large tables run for a long time; there is no point hammering the
	// describe API while they do.
	defaultPollMaxInterval = 2 * time.Minute
)

var backOffStrategy = retry.ExpBackoff(defaultPollMinInterval, defaultPollMaxInterval, 1.5, false)

// WorkerConfig encapsulates the configuration options for the poller.
type WorkerConfig struct {
	Session   ddbclient.Session
	ExportARN string
	Clock     clock.Clock
	Logger    corelogger.Logger
}

// Validate ensures that the config values are valid.
func (c *WorkerConfig) Validate() error {
	if c.Session == nil {
		return errors.NotValidf("missing Session")
	}
	if c.ExportARN == "" {
		return errors.NotValidf("missing ExportARN")
	}
	if c.Clock == nil {
		return errors.NotValidf("missing clock")
	}
	if c.Logger == nil {
		return errors.NotValidf("missing logger")
	}
	return nil
}

// Poller samples an export until it is terminal, then dies cleanly. A
// describe failure kills the worker with that error; the poller never
// retries failed calls, it only paces successive successful samples.
type Poller struct {
	tomb tomb.Tomb

	cfg WorkerConfig

	mu   sync.Mutex
	last export.Job
}

// NewWorker creates a new Poller.
func NewWorker(cfg WorkerConfig) (*Poller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	poller := &Poller{cfg: cfg}
	poller.tomb.Go(poller.loop)

	return poller, nil
}

// Kill is part of the worker.Worker interface.
func (w *Poller) Kill() {
	w.tomb.Kill(nil)
}

// Wait is part of the worker.Worker interface.
func (w *Poller) Wait() error {
	return w.tomb.Wait()
}

// Job returns the most recently observed description of the export.
// After a clean Wait, this holds the terminal description.
func (w *Poller) Job() export.Job {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

func (w *Poller) loop() error {
	// Sample once up front so a short-lived export is observed without
	// waiting out the first interval.
	job, err := w.poll()
	if err != nil {
		return errors.Trace(err)
	}
	if job.Status.Terminal() {
		return nil
	}

	timer := w.cfg.Clock.NewTimer(defaultPollMinInterval)
	defer timer.Stop()

	var attempts int
	for {
		select {
		case <-w.tomb.Dying():
			return tomb.ErrDying

		case <-timer.Chan():
			job, err := w.poll()
			if err != nil {
				return errors.Trace(err)
			}
			if job.Status.Terminal() {
				return nil
			}

			attempts++
			timer.Reset(backOffStrategy(0, attempts))
		}
	}
}

func (w *Poller) poll() (export.Job, error) {
	ctx := w.tomb.Context(context.Background())

	job, err := w.cfg.Session.DescribeExport(ctx, w.cfg.ExportARN)
	if err != nil {
		return export.Job{}, errors.Trace(err)
	}

	w.mu.Lock()
	w.last = job
	w.mu.Unlock()

	w.cfg.Logger.Debugf("export %q is %s", job.ExportARN, job.Status)
	return job, nil
}
