package core

import "fmt"

// Queue is the level a process is assigned to. System outranks User at every time unit.
type Queue int

const (
	SystemQueue Queue = iota + 1
	UserQueue
)

const (
	DefaultMinPriority             = 1
	DefaultMaxPriority             = 5
	DefaultSystemPriorityThreshold = 2
)

func (q Queue) String() string {
	switch q {
	case SystemQueue:
		return "system"
	case UserQueue:
		return "user"
	}
	return fmt.Sprintf("queue(%d)", int(q))
}

// Label is the short name used in tables, Q1 for system and Q2 for user.
func (q Queue) Label() string {
	return fmt.Sprintf("Q%d", int(q))
}

// Classifier maps a priority to its queue. Priorities in [Min, Threshold] go to
// the system queue, priorities in (Threshold, Max] go to the user queue.
type Classifier struct {
	MinPriority             int
	MaxPriority             int
	SystemPriorityThreshold int
}

func NewClassifier(minPriority, maxPriority, systemPriorityThreshold int) (Classifier, error) {
	if minPriority > maxPriority {
		return Classifier{}, fmt.Errorf("%w: priority range [%d, %d] is empty", ErrInvalidPriority, minPriority, maxPriority)
	}
	if systemPriorityThreshold < minPriority || systemPriorityThreshold > maxPriority {
		return Classifier{}, fmt.Errorf("%w: system threshold %d outside [%d, %d]",
			ErrInvalidPriority, systemPriorityThreshold, minPriority, maxPriority)
	}
	return Classifier{
		MinPriority:             minPriority,
		MaxPriority:             maxPriority,
		SystemPriorityThreshold: systemPriorityThreshold,
	}, nil
}

// DefaultClassifier uses priorities 1-5, with 1-2 system and 3-5 user.
func DefaultClassifier() Classifier {
	return Classifier{
		MinPriority:             DefaultMinPriority,
		MaxPriority:             DefaultMaxPriority,
		SystemPriorityThreshold: DefaultSystemPriorityThreshold,
	}
}

func (c Classifier) Classify(priority int) (Queue, error) {
	if priority < c.MinPriority || priority > c.MaxPriority {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPriority, priority, c.MinPriority, c.MaxPriority)
	}
	if priority <= c.SystemPriorityThreshold {
		return SystemQueue, nil
	}
	return UserQueue, nil
}
