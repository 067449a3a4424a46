// Package main demonstrates usage of the scg-mayfail package.
package main

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-mayfail/mayfail"
)

// Criterion is the capability set the harness drives.
type Criterion interface {
	SetState(state string, errOut *string) bool
	Lookup(name string, errOut *string) *Element
}

type Element struct {
	Name  string
	Value string
}

// platform follows the boolean/nil convention.
type platform struct {
	states   map[string]bool
	elements map[string]*Element
	current  string
}

func (p *platform) SetState(state string, errOut *string) bool {
	if !p.states[state] {
		*errOut = fmt.Sprintf("unknown state %q", state)
		return false
	}

	p.current = state

	return true
}

func (p *platform) Lookup(name string, errOut *string) *Element {
	if e, ok := p.elements[name]; ok {
		return e
	}

	*errOut = "element " + name + " not found"

	return nil
}

func main() {
	p := &platform{
		states:   map[string]bool{"Speaker": true, "Headset": true},
		elements: map[string]*Element{"/Audio/volume": {Name: "/Audio/volume", Value: "12"}},
	}
	w := mayfail.New[Criterion](p)

	// Success paths
	if err := mayfail.Do1(w, Criterion.SetState, "Headset"); err != nil {
		fmt.Println("unexpected:", err)
		return
	}

	vol := mayfail.Must(mayfail.Get1(w, Criterion.Lookup, "/Audio/volume"))
	fmt.Println(p.current, vol.Name, vol.Value)

	// Failure paths carry the platform's message verbatim
	err := mayfail.Do1(w, Criterion.SetState, "Bluetooth")
	fmt.Println(err, errors.Is(err, mayfail.ErrOperationFailed))

	if _, err := mayfail.Get1(w, Criterion.Lookup, "/Audio/mute"); err != nil {
		msg, _ := mayfail.Message(fmt.Errorf("lookup: %w", err))
		fmt.Println(msg)
	}
}
