// Package register_test contains unit tests for the variable registry.
// These tests validate first registration, idempotent re-registration,
// conflict detection, lookups on unknown variables, bulk registration,
// and wholesale clearing.
package register_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/maxsum/register"
)

func TestRegister_FirstRegistration(t *testing.T) {
	reg := register.NewRegistry()
	if err := reg.Register(1, 4); err != nil {
		t.Fatalf("Register(1, 4) returned %v; want nil", err)
	}
	if !reg.IsRegistered(1) {
		t.Error("IsRegistered(1) = false; want true")
	}
	size, err := reg.DomainSize(1)
	if err != nil {
		t.Fatalf("DomainSize(1) returned %v; want nil", err)
	}
	if size != 4 {
		t.Errorf("DomainSize(1) = %d; want 4", size)
	}
	if got := reg.Count(); got != 1 {
		t.Errorf("Count() = %d; want 1", got)
	}
}

func TestRegister_IdempotentSameSize(t *testing.T) {
	// Registering the same id with the same size any number of times must succeed.
	reg := register.NewRegistry()
	for i := 0; i < 5; i++ {
		if err := reg.Register(9, 3); err != nil {
			t.Fatalf("repeat %d: Register(9, 3) returned %v; want nil", i, err)
		}
	}
	if got := reg.Count(); got != 1 {
		t.Errorf("Count() = %d; want 1", got)
	}
}

func TestRegister_ConflictKeepsOriginalSize(t *testing.T) {
	reg := register.NewRegistry()
	if err := reg.Register(2, 4); err != nil {
		t.Fatal(err)
	}

	// A different size must fail with ErrDomainConflict.
	err := reg.Register(2, 5)
	if !errors.Is(err, register.ErrDomainConflict) {
		t.Fatalf("Register(2, 5) returned %v; want ErrDomainConflict", err)
	}

	// The original size must be intact after the failed attempt.
	size, err := reg.DomainSize(2)
	if err != nil {
		t.Fatal(err)
	}
	if size != 4 {
		t.Errorf("DomainSize(2) = %d after conflict; want 4", size)
	}
}

func TestRegister_BadDomainSize(t *testing.T) {
	reg := register.NewRegistry()
	for _, size := range []register.ValIndex{0, -1, -100} {
		err := reg.Register(1, size)
		if !errors.Is(err, register.ErrBadDomainSize) {
			t.Errorf("Register(1, %d) returned %v; want ErrBadDomainSize", size, err)
		}
	}
	if reg.IsRegistered(1) {
		t.Error("variable 1 registered despite invalid sizes")
	}
}

func TestDomainSize_UnknownVariable(t *testing.T) {
	reg := register.NewRegistry()
	_, err := reg.DomainSize(42)
	if !errors.Is(err, register.ErrUnknownVariable) {
		t.Fatalf("DomainSize(42) returned %v; want ErrUnknownVariable", err)
	}
}

func TestRegisterMany_AllRegistered(t *testing.T) {
	reg := register.NewRegistry()
	ids := []register.VarID{1, 2, 3, 4}
	if err := reg.RegisterMany(ids, 4); err != nil {
		t.Fatalf("RegisterMany returned %v; want nil", err)
	}
	if got := reg.Count(); got != 4 {
		t.Errorf("Count() = %d; want 4", got)
	}
	for _, id := range ids {
		if !reg.IsRegistered(id) {
			t.Errorf("IsRegistered(%d) = false; want true", id)
		}
	}
}

func TestRegisterMany_StopsAtFirstConflict(t *testing.T) {
	reg := register.NewRegistry()
	if err := reg.Register(3, 2); err != nil {
		t.Fatal(err)
	}

	// Variable 3 is already registered with size 2, so registering
	// [1, 2, 3, 4] with size 5 must fail at id 3; ids 1 and 2 stay.
	err := reg.RegisterMany([]register.VarID{1, 2, 3, 4}, 5)
	if !errors.Is(err, register.ErrDomainConflict) {
		t.Fatalf("RegisterMany returned %v; want ErrDomainConflict", err)
	}
	if !reg.IsRegistered(1) || !reg.IsRegistered(2) {
		t.Error("ids before the conflicting one should remain registered")
	}
	if reg.IsRegistered(4) {
		t.Error("ids after the conflicting one should not be registered")
	}
}

func TestVariables_SortedSnapshot(t *testing.T) {
	reg := register.NewRegistry()
	for _, id := range []register.VarID{30, 10, 20} {
		if err := reg.Register(id, 2); err != nil {
			t.Fatal(err)
		}
	}
	got := reg.Variables()
	want := []register.VarID{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("Variables() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Variables() = %v; want %v", got, want)
		}
	}
}

func TestClear_ResetsRegistry(t *testing.T) {
	reg := register.NewRegistry()
	if err := reg.RegisterMany([]register.VarID{1, 2, 3}, 2); err != nil {
		t.Fatal(err)
	}
	reg.Clear()

	if got := reg.Count(); got != 0 {
		t.Errorf("Count() after Clear = %d; want 0", got)
	}
	if reg.IsRegistered(1) {
		t.Error("IsRegistered(1) = true after Clear; want false")
	}

	// The registry must be reusable after clearing, including with new sizes.
	if err := reg.Register(1, 7); err != nil {
		t.Fatalf("Register(1, 7) after Clear returned %v; want nil", err)
	}
}
