// Package ecs provides an entity-component-system execution framework.
//
// A System iterates the entities matching a fixed component tuple, calls the
// user supplied Update for each of them and, when the concrete system opts in,
// reports which entities entered or left its matched set since the previous
// run. Optional Pre, Post and Notify hooks are detected once, at construction,
// through the Preparer, Finisher and Notifier interfaces.
//
// The package also ships a reference sparse-set component store (World) and a
// thin Scheduler that runs systems in registration order once per tick.
package ecs

import (
	"strconv"

	"github.com/QYUbit/ecsys/pkg/telemetry"
)

// Entity is an opaque identifier. The zero value is never handed out by a World.
type Entity uint64

func (e Entity) String() string {
	return "e" + strconv.FormatUint(uint64(e), 10)
}

// Notification tells a Notifier whether entities entered or left the matched set.
type Notification uint8

const (
	Added Notification = iota
	Removed
)

func (n Notification) String() string {
	switch n {
	case Added:
		return "ADDED"
	case Removed:
		return "REMOVED"
	default:
		return "Notification(" + strconv.Itoa(int(n)) + ")"
	}
}

// Phase names used for trace events and profiling labels.
const (
	PhaseRun     = telemetry.PhaseRun
	PhasePre     = "pre"
	PhaseIterate = "iterate"
	PhaseDiff    = "diff"
	PhaseNotify  = "notify"
	PhasePost    = "post"
	PhaseTick    = "tick"
	PhaseFlush   = "flush"
)
