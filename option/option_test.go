package option

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := Map(Some(n), fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on None returns None", prop.ForAll(
		func(n int) bool {
			return Map(None[int](), func(x int) int { return x + n }).IsNone()
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOptionPointerRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("FromPtr(ptr).ToPtr() preserves the value", prop.ForAll(
		func(n int) bool {
			result := FromPtr(&n).ToPtr()
			return result != nil && *result == n
		},
		gen.Int(),
	))

	properties.Property("FromPtr(nil).ToPtr() returns nil", prop.ForAll(
		func() bool {
			var ptr *int
			return FromPtr(ptr).ToPtr() == nil
		},
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() || o.IsNone() {
			t.Error("expected Some")
		}
		if o.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", o.Unwrap())
		}
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() || !o.IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("UnwrapOr returns default on None", func(t *testing.T) {
		if None[int]().UnwrapOr(100) != 100 {
			t.Error("expected default value")
		}
	})

	t.Run("UnwrapOrElse computes default lazily", func(t *testing.T) {
		callCount := 0
		fallback := func() int {
			callCount++
			return 100
		}

		if Some(42).UnwrapOrElse(fallback) != 42 {
			t.Error("expected actual value")
		}
		if callCount != 0 {
			t.Error("expected fallback not evaluated for Some")
		}
		if None[int]().UnwrapOrElse(fallback) != 100 {
			t.Error("expected fallback value")
		}
		if callCount != 1 {
			t.Errorf("expected 1 call, got %d", callCount)
		}
	})

	t.Run("Filter keeps matching values", func(t *testing.T) {
		filtered := Some(42).Filter(func(x int) bool { return x > 0 })
		if !filtered.IsSome() || filtered.Unwrap() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Filter removes non-matching values", func(t *testing.T) {
		if Some(42).Filter(func(x int) bool { return x < 0 }).IsSome() {
			t.Error("expected None")
		}
	})
}

func TestOptionFlatMapFold(t *testing.T) {
	t.Run("FlatMap on Some applies function", func(t *testing.T) {
		result := FlatMap(Some(42), func(x int) Option[int] { return Some(x * 2) })
		if !result.IsSome() || result.Unwrap() != 84 {
			t.Error("expected Some(84)")
		}
	})

	t.Run("FlatMap on None returns None", func(t *testing.T) {
		result := FlatMap(None[int](), func(x int) Option[int] { return Some(x) })
		if !result.IsNone() {
			t.Error("expected None")
		}
	})

	t.Run("Fold selects the matching handler", func(t *testing.T) {
		got := Fold(Some(2),
			func(x int) string { return "some" },
			func() string { return "none" },
		)
		if got != "some" {
			t.Error("expected some handler")
		}

		got = Fold(None[int](),
			func(x int) string { return "some" },
			func() string { return "none" },
		)
		if got != "none" {
			t.Error("expected none handler")
		}
	})

	t.Run("Match dispatches on state", func(t *testing.T) {
		visited := ""
		Some(1).Match(
			func(int) { visited = "some" },
			func() { visited = "none" },
		)
		if visited != "some" {
			t.Error("expected onSome")
		}
	})
}

func TestOptionString(t *testing.T) {
	if Some(42).String() != "Some(42)" {
		t.Error("unexpected string for Some")
	}
	if None[int]().String() != "None" {
		t.Error("unexpected string for None")
	}
}
