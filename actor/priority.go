// MIT License
//
// Copyright (c) 2025-2026 Priact Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	"fmt"
	"strings"
)

// Priority ranks the messages pending in an actor's mailbox. The ordering is
// total: a Priority compares greater than another when its numeric value is
// greater. Stop strictly dominates all operational priorities and is reserved
// for the terminal control message.
type Priority int

const (
	// Low is the lowest operational priority.
	Low Priority = iota
	// Medium is the default priority for messages that do not declare one.
	Medium
	// High is the highest operational priority.
	High
	// Stop is the maximal priority. It is reserved for PoisonPill and cannot
	// be assigned to a declared operation.
	Stop
	numPriorities = 4
)

// priorities is internally used to provide the textual form of the levels
var priorities = [numPriorities]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
	Stop:   "stop",
}

// String returns the text representation of the priority
func (p Priority) String() string {
	if p < Low || p > Stop {
		return "unknown"
	}
	return priorities[p]
}

// Valid reports whether the priority is one of the defined levels.
func (p Priority) Valid() bool {
	return p >= Low && p <= Stop
}

// Operational reports whether the priority can be assigned to a declared
// operation. Stop is excluded: it is reserved for the terminal message.
func (p Priority) Operational() bool {
	return p >= Low && p <= High
}

// ParsePriority converts the textual form of a priority back into its value.
// Parsing is case-insensitive.
func ParsePriority(text string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "stop":
		return Stop, nil
	default:
		return Priority(-1), fmt.Errorf("unknown priority level: %q", text)
	}
}

// Prioritized is implemented by any message that exposes its own priority.
// Messages that do not implement Prioritized are ranked Medium.
type Prioritized interface {
	Priority() Priority
}

// PriorityOf returns the priority of the given message. Messages that do not
// implement Prioritized get the default Medium rank.
func PriorityOf(msg any) Priority {
	if prioritized, ok := msg.(Prioritized); ok {
		return prioritized.Priority()
	}
	return Medium
}
