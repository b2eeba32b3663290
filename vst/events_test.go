package vst

import (
	"bytes"
	"testing"
)

func TestMidiEventLayout(t *testing.T) {
	e := MidiEvent(64, 0x90, 60, 100)

	if e.Type() != MidiType {
		t.Errorf("type = %d, want %d", e.Type(), MidiType)
	}
	if e.ByteSize() != EventSize {
		t.Errorf("byteSize = %d, want %d", e.ByteSize(), EventSize)
	}
	if e.DeltaFrames() != 64 {
		t.Errorf("deltaFrames = %d, want 64", e.DeltaFrames())
	}
	data := e.Data()
	if data[0] != 0x90 || data[1] != 60 || data[2] != 100 {
		t.Errorf("midi bytes = % x, want 90 3c 64", data[:3])
	}
}

func TestDynamicEventsRoundTrip(t *testing.T) {
	events := []Event{
		MidiEvent(0, 0x90, 60, 100),
		MidiEvent(16, 0x80, 60, 0),
		MidiEvent(32, 0xB0, 1, 127),
	}
	ptrs := make([]*Event, len(events))
	for i := range events {
		ptrs[i] = &events[i]
	}
	foreign := &Events{NumEvents: int32(len(events)), Events: ptrs}

	d := NewDynamicEvents(foreign)
	if len(d.Events) != 3 {
		t.Fatalf("owned events = %d, want 3", len(d.Events))
	}

	view := d.CEvents()
	if view.NumEvents != 3 {
		t.Fatalf("view count = %d, want 3", view.NumEvents)
	}
	for i, ev := range view.Events {
		if !bytes.Equal(ev.Dump[:], events[i].Dump[:]) {
			t.Errorf("event %d dump mismatch", i)
		}
	}
}

func TestCEventsAliasesOwnedStorage(t *testing.T) {
	d := DynamicEvents{Events: []Event{MidiEvent(0, 0x90, 60, 100)}}
	view := d.CEvents()

	// The view must point into the owner, not at copies.
	d.Events[0].Dump[16] = 0x80
	if view.Events[0].Dump[16] != 0x80 {
		t.Error("view does not alias owned storage")
	}
	if view.Events[0] != &d.Events[0] {
		t.Error("view element is not a pointer into the owned slice")
	}
}

func TestNewDynamicEventsDefensive(t *testing.T) {
	if got := NewDynamicEvents(nil); len(got.Events) != 0 {
		t.Errorf("nil batch: got %d events", len(got.Events))
	}

	// Count larger than the backing array must not read past it.
	ev := MidiEvent(0, 0x90, 60, 100)
	over := &Events{NumEvents: 5, Events: []*Event{&ev, nil}}
	got := NewDynamicEvents(over)
	if len(got.Events) != 1 {
		t.Errorf("overcounted batch: got %d events, want 1", len(got.Events))
	}
}

func TestOpcodeNames(t *testing.T) {
	if got := EffProcessEvents.String(); got != "effProcessEvents" {
		t.Errorf("String() = %q", got)
	}
	if got := Opcode(9999).String(); got != "effOpcode(9999)" {
		t.Errorf("unknown opcode String() = %q", got)
	}
	if got := AudioMasterGetTime.String(); got != "audioMasterGetTime" {
		t.Errorf("host String() = %q", got)
	}
	if got := HostOpcode(9999).String(); got != "audioMasterOpcode(9999)" {
		t.Errorf("unknown host opcode String() = %q", got)
	}
}
