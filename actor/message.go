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

// PoisonPill is the terminal control message. It carries no payload and is
// always ranked Stop, so it overtakes every operational message still pending
// in the mailbox. When the processing loop pops a PoisonPill it terminates the
// actor immediately without invoking any handler: messages still queued behind
// it are discarded, not processed.
//
// Every actor understands PoisonPill without declaring it; the schema
// translator appends it to every generated message set as the implicit last
// variant.
type PoisonPill struct{}

// Priority returns the maximal priority. The value receiver makes both
// PoisonPill and *PoisonPill satisfy Prioritized.
func (PoisonPill) Priority() Priority { return Stop }

// isPoisonPill reports whether the message is the terminal control message.
func isPoisonPill(msg any) bool {
	switch msg.(type) {
	case PoisonPill, *PoisonPill:
		return true
	default:
		return false
	}
}

// drainSignal is injected into the ingestion endpoint by the last producer
// handle to close. It never reaches the priority queue: the ingestion loop
// consumes it and reports that no producer remains.
type drainSignal struct{}
