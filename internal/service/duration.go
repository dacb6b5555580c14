package service

import (
	"time"

	"github.com/rs/zerolog"
)

type checkpoint struct {
	caption string
	at      time.Time
}

// Duration times one transaction with named checkpoints.
type Duration struct {
	name   string
	start  time.Time
	points []checkpoint
}

// NewDuration starts a timer.
func NewDuration(name string) *Duration {
	return &Duration{
		name:   name,
		start:  time.Now(),
		points: make([]checkpoint, 0, 8),
	}
}

// CheckPoint marks the end of a step.
func (d *Duration) CheckPoint(caption string) {
	d.points = append(d.points, checkpoint{caption: caption, at: time.Now()})
}

// Total is the time elapsed since the timer started.
func (d *Duration) Total() time.Duration {
	return time.Since(d.start)
}

// TotalMs is Total in whole milliseconds.
func (d *Duration) TotalMs() int64 {
	return d.Total().Milliseconds()
}

// Steps returns the checkpoint captions in order.
func (d *Duration) Steps() []string {
	steps := make([]string, len(d.points))
	for i, p := range d.points {
		steps[i] = p.caption
	}
	return steps
}

// Log writes the time spent in each step at debug level.
func (d *Duration) Log(log zerolog.Logger) {
	prev := d.start
	for _, p := range d.points {
		log.Debug().
			Str("timer", d.name).
			Str("step", p.caption).
			Dur("elapsed", p.at.Sub(prev)).
			Msg("elapsed time")
		prev = p.at
	}
	log.Debug().Str("timer", d.name).Dur("total", d.Total()).Msg("elapsed time")
}
