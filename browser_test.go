package windowing

import "testing"

func TestBrowserIDUnique(t *testing.T) {
	seen := make(map[BrowserID]bool)
	for i := 0; i < 1000; i++ {
		id := NewBrowserID()
		if id.IsZero() {
			t.Fatal("NewBrowserID returned the zero id")
		}
		if seen[id] {
			t.Fatalf("id %v allocated twice", id)
		}
		seen[id] = true
	}
}

func TestBrowserIDZero(t *testing.T) {
	var id BrowserID
	if !id.IsZero() {
		t.Error("zero value IsZero = false")
	}
	if id.String() != "browser(nil)" {
		t.Errorf("zero String = %q, want %q", id.String(), "browser(nil)")
	}
	if s := NewBrowserID().String(); len(s) != len("browser(xxxxxxxx)") {
		t.Errorf("String = %q, want browser(xxxxxxxx) form", s)
	}
}

func TestBrowserIDReplyFirstSendWins(t *testing.T) {
	r := NewBrowserIDReply()
	first := NewBrowserID()
	second := NewBrowserID()

	if !r.Send(first) {
		t.Error("first Send = false, want true")
	}
	if r.Send(second) {
		t.Error("second Send = true, want false")
	}

	got := <-r.Recv()
	if got != first {
		t.Errorf("Recv = %v, want first id %v", got, first)
	}

	select {
	case extra := <-r.Recv():
		t.Errorf("second value %v delivered on one-shot reply", extra)
	default:
	}
}

func TestBrowserIDReplySendNeverBlocks(t *testing.T) {
	r := NewBrowserIDReply()
	// Nobody is receiving; both calls must return immediately.
	r.Send(NewBrowserID())
	r.Send(NewBrowserID())
}
