// lifecycle.go gives Engine an optional continuous run loop, for hosts
// (the demo CLI) that want "advance once per tick" instead of calling
// Step directly. There is no cooperative cancellation mid-step: Stop
// only asks the loop to exit after its current tick.
package ca

import (
	"log"
	"time"
)

// Start begins a ticker-paced run loop calling Step once per tickRate.
// onTick, if non-nil, runs after each successful step (e.g. to report
// stats). A zero tickRate defaults to 100ms.
func (e *Engine) Start(tickRate time.Duration, onTick func(e *Engine)) {
	e.lifecycleMu.Lock()
	if e.running {
		e.lifecycleMu.Unlock()
		return
	}
	if tickRate <= 0 {
		tickRate = 100 * time.Millisecond
	}
	e.tickRate = tickRate
	e.onTick = onTick
	e.stopChan = make(chan struct{})
	e.running = true
	e.lifecycleMu.Unlock()

	log.Printf("engine[%s]: starting run loop at %s/tick", e.id, tickRate)
	go e.runLoop()
}

// Stop asks the run loop to exit after its in-flight tick.
func (e *Engine) Stop() {
	e.lifecycleMu.Lock()
	if !e.running {
		e.lifecycleMu.Unlock()
		return
	}
	e.running = false
	close(e.stopChan)
	e.lifecycleMu.Unlock()
}

func (e *Engine) runLoop() {
	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := e.Step(); err != nil {
				log.Printf("engine[%s]: step failed: %v", e.id, err)
				continue
			}
			if e.onTick != nil {
				e.onTick(e)
			}
		case <-e.stopChan:
			log.Printf("engine[%s]: run loop stopped at generation %d", e.id, e.Generation())
			return
		}
	}
}
