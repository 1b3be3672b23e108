package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	d := New(2021, 1, 1)
	h.Append(d, 0.8).Append(d, 0.9)

	if h.Len() != 1 {
		t.Errorf("History.Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(d); v != 0.9 {
		t.Errorf("Get(%v) = %v want 0.9", d, v)
	}
}

func TestGetIsExact(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2021, 1, 1), 0.8)
	h.Append(New(2021, 1, 3), 0.9)

	if v, ok := h.Get(New(2021, 1, 1)); !ok || v != 0.8 {
		t.Errorf("Get(2021-01-01) = %v, %v want 0.8, true", v, ok)
	}
	if v, ok := h.Get(New(2021, 1, 2)); ok {
		t.Errorf("Get(2021-01-02) = %v, %v want 0, false", v, ok)
	}
	if v, ok := h.Get(New(2020, 12, 31)); ok {
		t.Errorf("Get(2020-12-31) = %v, %v want 0, false", v, ok)
	}
}

func TestSpanAndValues(t *testing.T) {
	h := new(History[float64])
	if _, ok := h.Span(); ok {
		t.Errorf("Span() of empty history is ok")
	}
	h.Append(New(2021, 1, 3), 3)
	h.Append(New(2021, 1, 1), 1)
	h.Append(New(2021, 1, 2), 2)

	span, ok := h.Span()
	if !ok || span.From != New(2021, 1, 1) || span.To != New(2021, 1, 3) {
		t.Errorf("Span() = %v, %v want 2021-01-01..2021-01-03, true", span, ok)
	}

	var prev Date
	var n int
	for on, v := range h.Values() {
		if !prev.IsZero() && !prev.Before(on) {
			t.Errorf("Values() not chronological: %v then %v", prev, on)
		}
		n++
		if v != float64(n) {
			t.Errorf("Values()[%d] = %v want %v", n-1, v, n)
		}
		prev = on
	}
}
