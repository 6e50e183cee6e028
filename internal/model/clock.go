package model

import (
	"sync"
	"time"

	"github.com/apex/log"
)

// TimeControl is the budget each player starts with and the time credited
// back after every move they complete.
type TimeControl struct {
	Start     time.Duration
	Increment time.Duration
}

var DefaultTimeControl = TimeControl{Start: 10 * time.Minute}

type Clock struct {
	mu          sync.Mutex
	control     TimeControl
	timeLeft    time.Duration
	lastStarted time.Time
	isRunning   bool
	now         func() time.Time
}

func NewClock(control TimeControl) *Clock {
	return &Clock{
		control:  control,
		timeLeft: control.Start,
		now:      time.Now,
	}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = c.now()
		c.isRunning = true
		log.WithField("left", c.timeLeft).Debug("clock started")
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.timeLeft -= c.now().Sub(c.lastStarted)
		c.isRunning = false
		log.WithField("left", c.timeLeft).Debug("clock stopped")
	}
}

// AddIncrement credits the per-move bonus. It is called once for every move,
// including a side's first move, when its clock has not been running.
func (c *Clock) AddIncrement() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timeLeft += c.control.Increment
}

func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timeLeft = c.control.Start
	c.isRunning = false
}

func (c *Clock) TimeLeft() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.timeLeft - c.now().Sub(c.lastStarted)
	}
	return c.timeLeft
}
