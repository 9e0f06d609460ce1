package factory

import (
	"github.com/arrowlanding/bsort/barrier"
	"github.com/arrowlanding/bsort/queue"
)

// BarrierVariant names a concrete Barrier implementation.
type BarrierVariant string

const (
	BarrierSense BarrierVariant = "BARRIER_SENSE"
	BarrierStep  BarrierVariant = "BARRIER_STEP"
)

// MakeBarrier constructs a fresh Barrier for the given tag, or nil if the
// tag isn't recognized.
func MakeBarrier(variant BarrierVariant) barrier.Barrier {
	switch variant {
	case BarrierSense:
		return barrier.NewSense()
	case BarrierStep:
		return barrier.NewStep()
	default:
		return nil
	}
}

// QueueVariant names a concrete TaskQueue implementation.
type QueueVariant string

const (
	QueueBlocking QueueVariant = "QUEUE_BLOCKING"
)

// MakeQueue constructs a fresh TaskQueue for the given tag, or nil if the
// tag isn't recognized.
func MakeQueue(variant QueueVariant) queue.TaskQueue {
	switch variant {
	case QueueBlocking:
		return queue.NewBlocking()
	default:
		return nil
	}
}
