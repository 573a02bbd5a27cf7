package core

import log "github.com/sirupsen/logrus"

// WithCapacity configures the recorder capacity.
func WithCapacity(n int) Option {
	return func(r *Run) {
		r.capacity = n
	}
}

// WithLogger configures the logger notices and debug output go to.
func WithLogger(l *log.Logger) Option {
	return func(r *Run) {
		r.logger = l
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(r *Run) {
		r.id = id
	}
}

// WithMaxArraySize configures the largest accepted array.
func WithMaxArraySize(n int) Option {
	return func(r *Run) {
		if n > 0 {
			r.maxArraySize = n
		}
	}
}

// WithStackCapacity configures the capacity of stacks created for the run.
func WithStackCapacity(n int) Option {
	return func(r *Run) {
		if n > 0 {
			r.stackCapacity = n
		}
	}
}

// WithQueueCapacity configures the capacity of queues created for the run.
func WithQueueCapacity(n int) Option {
	return func(r *Run) {
		if n > 0 {
			r.queueCapacity = n
		}
	}
}
