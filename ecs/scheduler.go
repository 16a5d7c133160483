package ecs

import (
	"fmt"
	"strings"
)

type System interface {
	Update(w *World)
}

// Scheduler runs its systems once per tick in registration order. Each
// system sees every change made by the systems before it in the same tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends a system to the end of the tick. Nil systems are ignored.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Order returns the type names of the systems in tick order, such as
// "InputSystem".
func (s *Scheduler) Order() []string {
	names := make([]string, 0, len(s.systems))
	for _, system := range s.systems {
		name := fmt.Sprintf("%T", system)
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		names = append(names, strings.TrimPrefix(name, "*"))
	}
	return names
}
