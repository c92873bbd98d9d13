package domain_test

import (
	"testing"

	"github.com/ghuser/catalog/pkg/domain"
)

type stringValue struct {
	value string
}

func (v stringValue) Equals(other domain.ValueObject) bool {
	return domain.StructurallyEqual(v, other)
}

type complexValue struct {
	value      string
	otherValue int
}

func (v complexValue) Equals(other domain.ValueObject) bool {
	return domain.StructurallyEqual(v, other)
}

type nestedValue struct {
	id    domain.Uuid
	tags  map[string]int
	parts []stringValue
}

func (v nestedValue) Equals(other domain.ValueObject) bool {
	return domain.StructurallyEqual(v, other)
}

type pointerValue struct {
	inner *complexValue
}

func (v *pointerValue) Equals(other domain.ValueObject) bool {
	return domain.StructurallyEqual(v, other)
}

func TestStructurallyEqual(t *testing.T) {
	id := domain.MustParseUuid("550e8400-e29b-41d4-a716-446655440000")

	tests := []struct {
		name string
		a, b domain.ValueObject
		want bool
	}{
		{"same string value", stringValue{"test"}, stringValue{"test"}, true},
		{"different string value", stringValue{"test"}, stringValue{"other"}, false},
		{"same complex value", complexValue{"test", 1}, complexValue{"test", 1}, true},
		{"complex differs in one field", complexValue{"test", 1}, complexValue{"test", 2}, false},
		{"different concrete types", stringValue{"test"}, complexValue{"test", 0}, false},
		{"nil other", stringValue{"test"}, nil, false},
		{"nil receiver side", nil, stringValue{"test"}, false},
		{
			"nested maps ignore order",
			nestedValue{id: id, tags: map[string]int{"a": 1, "b": 2}, parts: []stringValue{{"x"}}},
			nestedValue{id: id, tags: map[string]int{"b": 2, "a": 1}, parts: []stringValue{{"x"}}},
			true,
		},
		{
			"nested slice order matters",
			nestedValue{id: id, parts: []stringValue{{"x"}, {"y"}}},
			nestedValue{id: id, parts: []stringValue{{"y"}, {"x"}}},
			false,
		},
		{
			"nested uuid differs",
			nestedValue{id: id},
			nestedValue{id: domain.MustParseUuid("550e8400-e29b-41d4-a716-446655440001")},
			false,
		},
		{"pointer fields compared by target", &pointerValue{&complexValue{"a", 1}}, &pointerValue{&complexValue{"a", 1}}, true},
		{"pointer field nil on one side", &pointerValue{&complexValue{"a", 1}}, &pointerValue{}, false},
		{"typed nil pointer", &pointerValue{}, (*pointerValue)(nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.StructurallyEqual(tt.a, tt.b); got != tt.want {
				t.Fatalf("StructurallyEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueObject_EqualsIsSymmetric(t *testing.T) {
	a := complexValue{"test", 1}
	b := complexValue{"test", 1}
	if !a.Equals(b) || !b.Equals(a) {
		t.Fatal("expected equality in both directions")
	}
}
