// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"errors"
	"slices"
	"testing"
)

func TestResult_Success(t *testing.T) {
	result := Success(1, 2, 3)
	if !result.IsSuccessful() {
		t.Fatal("IsSuccessful() = false, want true")
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
	if !slices.Equal(result.Values(), []int{1, 2, 3}) {
		t.Errorf("Values() = %v, want [1 2 3]", result.Values())
	}
	if result.Len() != 3 {
		t.Errorf("Len() = %d, want 3", result.Len())
	}
}

func TestResult_EmptySuccess(t *testing.T) {
	for name, result := range map[string]Result[string]{
		"no values": Success[string](),
		"zero":      {},
	} {
		t.Run(name, func(t *testing.T) {
			if !result.IsSuccessful() {
				t.Error("IsSuccessful() = false, want true")
			}
			if result.Len() != 0 {
				t.Errorf("Len() = %d, want 0", result.Len())
			}
		})
	}
}

func TestResult_Failure(t *testing.T) {
	reason := errors.New("bad input")
	result := Failure[int](reason)

	if result.IsSuccessful() {
		t.Fatal("IsSuccessful() = true, want false")
	}
	if result.Err() != reason {
		t.Errorf("Err() = %v, want %v", result.Err(), reason)
	}
	if result.Values() != nil {
		t.Errorf("Values() = %v, want nil", result.Values())
	}
	values, err := result.Get()
	if values != nil || err != reason {
		t.Errorf("Get() = (%v, %v), want (nil, %v)", values, err, reason)
	}
}

func TestFailure_NilReasonPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Failure(nil) did not panic")
		}
	}()
	Failure[int](nil)
}

func TestFailuref_Wraps(t *testing.T) {
	cause := errors.New("cause")
	result := Failuref[int]("converting %q: %w", "x", cause)
	if !errors.Is(result.Err(), cause) {
		t.Errorf("Err() = %v, does not wrap cause", result.Err())
	}
	if got, want := result.Err().Error(), `converting "x": cause`; got != want {
		t.Errorf("Err() = %q, want %q", got, want)
	}
}

func TestResult_ValuesAreCopies(t *testing.T) {
	source := []string{"a", "b"}
	result := SuccessFrom(source)
	source[0] = "changed"

	values := result.Values()
	if values[0] != "a" {
		t.Errorf("SuccessFrom kept a reference to the caller's slice: %q", values)
	}
	values[1] = "changed"
	if result.Values()[1] != "b" {
		t.Error("Values() returned the result's backing slice")
	}
}
