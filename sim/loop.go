// Package sim drives a movement controller at a fixed tick rate from a
// scripted input source, either as fast as possible or in real time.
package sim

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/automoto/dashrun/shared/gamemath"
	"github.com/automoto/dashrun/shared/movement"
)

// Frame is the controller state observed after one tick.
type Frame struct {
	Index     int
	Input     movement.InputSnapshot
	Position  gamemath.Vec2
	Velocity  gamemath.Vec2
	Dashed    bool
	DashReady bool
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame %d | Pos(%.2f, %.2f) | Vel(%.2f, %.2f)",
		f.Index, f.Position.X, f.Position.Y, f.Velocity.X, f.Velocity.Y)
}

type Loop struct {
	controller *movement.Controller
	script     Script
	tickRate   int
	frame      int
	onFrame    func(Frame)
}

func NewLoop(controller *movement.Controller, script Script, tickRate int) (*Loop, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("sim: tick rate must be positive, got %d", tickRate)
	}
	if script == nil {
		script = Idle
	}
	return &Loop{
		controller: controller,
		script:     script,
		tickRate:   tickRate,
	}, nil
}

// OnFrame registers a callback invoked after every tick.
func (l *Loop) OnFrame(fn func(Frame)) {
	l.onFrame = fn
}

// FrameIndex returns the index of the next frame to run.
func (l *Loop) FrameIndex() int {
	return l.frame
}

func (l *Loop) Delta() float64 {
	return 1.0 / float64(l.tickRate)
}

// Step runs n ticks back to back and returns the last frame. With n <= 0
// nothing runs and the zero Frame is returned.
func (l *Loop) Step(n int) Frame {
	var last Frame
	for i := 0; i < n; i++ {
		last = l.tick()
	}
	return last
}

// Run ticks in real time until frames ticks have run or ctx is done.
// frames <= 0 runs until ctx is done.
func (l *Loop) Run(ctx context.Context, frames int) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Sim loop started at %d ticks/second", l.tickRate)

	for ran := 0; frames <= 0 || ran < frames; ran++ {
		select {
		case <-ctx.Done():
			log.Println("Sim loop stopped")
			return ctx.Err()
		case <-ticker.C:
			l.tick()
		}
	}
	log.Printf("Sim loop finished after %d frames", l.frame)
	return nil
}

func (l *Loop) tick() Frame {
	input := l.script(l.frame)
	l.controller.Update(l.Delta(), input)

	f := Frame{
		Index:     l.frame,
		Input:     input,
		Position:  l.controller.Position(),
		Velocity:  l.controller.Velocity(),
		Dashed:    l.controller.Dashed(),
		DashReady: l.controller.DashReady(),
	}
	l.frame++

	if l.onFrame != nil {
		l.onFrame(f)
	}
	return f
}
