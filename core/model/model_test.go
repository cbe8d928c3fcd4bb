package model

import (
	"reflect"
	"testing"
)

func TestRoleString(t *testing.T) {
	if RolePrimary.String() != "primary" || RoleSecondary.String() != "secondary" {
		t.Fatalf("unexpected role names: %s %s", RolePrimary, RoleSecondary)
	}
	if Role(9).String() != "unknown" {
		t.Fatalf("out-of-range role must stringify as unknown")
	}
}

func TestRotationNames(t *testing.T) {
	r := Rotation{Persons: []Person{
		{Name: "me", Location: "abc"},
		{Name: "ce", Location: "def"},
	}}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"me", "ce"}) {
		t.Fatalf("Names() = %v", got)
	}
}

func TestSchedulePersonFor(t *testing.T) {
	s := &Schedule{Assignments: []Assignment{
		{Period: 1, Role: RolePrimary, Person: "me"},
		{Period: 1, Role: RoleSecondary, Person: "be"},
	}}
	if got := s.PersonFor(1, RoleSecondary); got != "be" {
		t.Fatalf("PersonFor = %q", got)
	}
	if got := s.PersonFor(2, RolePrimary); got != "" {
		t.Fatalf("unknown period must yield empty, got %q", got)
	}
}
