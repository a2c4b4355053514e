package res

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/sum/pkg/sum"
	"github.com/ib-77/sum/pkg/sum/opt"
)

func TestOf(t *testing.T) {
	t.Parallel()
	r := Of(strconv.Atoi("42"))
	if !r.IsSuccess() || r.Unwrap() != 42 {
		t.Fatalf("expected success 42")
	}

	r = Of(strconv.Atoi("bad"))
	if !r.IsFailure() {
		t.Fatalf("expected failure from a parse error")
	}
}

func TestTuple(t *testing.T) {
	t.Parallel()
	v, err := Tuple(sum.Success[error](7))
	if v != 7 || err != nil {
		t.Fatalf("expected (7, nil), got: (%v, %v)", v, err)
	}

	boom := errors.New("boom")
	v, err = Tuple(sum.Failure[int](boom))
	if v != 0 || !errors.Is(err, boom) {
		t.Fatalf("expected (0, boom), got: (%v, %v)", v, err)
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	out := Map(sum.Success[string](3), func(v int) string { return strconv.Itoa(v * 2) })
	if v, ok := out.Get(); !ok || v != "6" {
		t.Fatalf("expected success \"6\", got: (%v, %v)", v, ok)
	}
}

func TestMap_FailureShortCircuits(t *testing.T) {
	t.Parallel()
	called := false
	out := Map(sum.Failure[int]("e"), func(v int) int {
		called = true
		return v
	})
	if !out.IsFailure() || out.UnwrapErr() != "e" || called {
		t.Fatalf("expected unchanged failure without invoking f, called=%v", called)
	}
}

func TestMap_IdentityLaw(t *testing.T) {
	t.Parallel()
	id := func(v int) int { return v }

	out := Map(sum.Success[string](5), id)
	if v, ok := out.Get(); !ok || v != 5 {
		t.Fatalf("expected map(id) to preserve the success value, got: (%v, %v)", v, ok)
	}

	out = Map(sum.Failure[int]("e"), id)
	if !out.IsFailure() || out.UnwrapErr() != "e" {
		t.Fatalf("expected map(id) to preserve the failure")
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()
	out := MapErr(sum.Failure[int]("e"), func(e string) int { return len(e) })
	if out.UnwrapErr() != 1 {
		t.Fatalf("expected the transformed failure, got: %v", out.UnwrapErr())
	}

	called := false
	out2 := MapErr(sum.Success[string](5), func(e string) string {
		called = true
		return e
	})
	if !out2.IsSuccess() || out2.Unwrap() != 5 || called {
		t.Fatalf("expected unchanged success without invoking f, called=%v", called)
	}
}

func TestMapOr_AlwaysSuccess(t *testing.T) {
	t.Parallel()
	out := MapOr(sum.Success[string](2), 9, func(v int) int { return v * 10 })
	if v, ok := out.Get(); !ok || v != 20 {
		t.Fatalf("expected success 20, got: (%v, %v)", v, ok)
	}

	// defaulting wraps: the failure case still yields a success
	out = MapOr(sum.Failure[int]("e"), 9, func(v int) int { return v * 10 })
	if v, ok := out.Get(); !ok || v != 9 {
		t.Fatalf("expected the default wrapped as success, got: (%v, %v)", v, ok)
	}
}

func TestMapOrElse_AlwaysSuccess(t *testing.T) {
	t.Parallel()
	onErr := func(e string) int { return len(e) }
	onOk := func(v int) int { return v + 1 }

	out := MapOrElse(sum.Success[string](2), onErr, onOk)
	if v, _ := out.Get(); v != 3 {
		t.Fatalf("expected 3, got: %v", v)
	}

	out = MapOrElse(sum.Failure[int]("abcd"), onErr, onOk)
	if v, ok := out.Get(); !ok || v != 4 {
		t.Fatalf("expected onErr result wrapped as success, got: (%v, %v)", v, ok)
	}
}

func TestAndThen(t *testing.T) {
	t.Parallel()
	parse := func(s string) sum.Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return sum.Failure[int]("not a number")
		}
		return sum.Success[string](n)
	}

	out := AndThen(sum.Success[string]("8"), parse)
	if out.Unwrap() != 8 {
		t.Fatalf("expected 8, got: %v", out.Unwrap())
	}

	called := false
	out = AndThen(sum.Failure[string]("e"), func(s string) sum.Result[int, string] {
		called = true
		return parse(s)
	})
	if !out.IsFailure() || out.UnwrapErr() != "e" || called {
		t.Fatalf("expected short-circuit without invoking f, called=%v", called)
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	out := OrElse(sum.Failure[int]("e"), func(e string) sum.Result[int, int] {
		return sum.Failure[int](len(e))
	})
	if out.UnwrapErr() != 1 {
		t.Fatalf("expected the recovered failure type, got: %v", out.UnwrapErr())
	}

	called := false
	out = OrElse(sum.Success[string](5), func(string) sum.Result[int, int] {
		called = true
		return sum.Success[int](0)
	})
	if out.Unwrap() != 5 || called {
		t.Fatalf("expected the success value carried over without invoking f, called=%v", called)
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	inner := sum.Success[string](5)
	out := Flatten(sum.Success[string](inner))
	if out.Id() != inner.Id() {
		t.Fatalf("expected the inner result returned unchanged")
	}

	innerFail := sum.Failure[int]("inner")
	out = Flatten(sum.Success[string](innerFail))
	if out.UnwrapErr() != "inner" {
		t.Fatalf("expected the inner failure, got: %v", out.UnwrapErr())
	}

	out = Flatten(sum.Failure[sum.Result[int, string]]("outer"))
	if out.UnwrapErr() != "outer" {
		t.Fatalf("expected the outer failure, got: %v", out.UnwrapErr())
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	out := Transpose(sum.Success[string](sum.Present(5)))
	if !out.IsPresent() || out.Unwrap().Unwrap() != 5 {
		t.Fatalf("expected Present(Success(5))")
	}

	out = Transpose(sum.Failure[sum.Option[int]]("e"))
	if !out.IsPresent() || out.Unwrap().UnwrapErr() != "e" {
		t.Fatalf("expected Present(Failure(e))")
	}

	out = Transpose(sum.Success[string](sum.Absent[int]()))
	if !out.IsAbsent() {
		t.Fatalf("expected Absent from Success(Absent)")
	}
}

func TestTranspose_DualOfOptionTranspose(t *testing.T) {
	t.Parallel()
	// Present(Success(5)) -> Success(Present(5)) -> Present(Success(5))
	start := sum.Present(sum.Success[string](5))
	back := Transpose(opt.Transpose(start))
	if !back.IsPresent() || back.Unwrap().Unwrap() != 5 {
		t.Fatalf("expected the round trip to restore Present(Success(5))")
	}

	// Present(Failure(e)) -> Failure(e) -> Present(Failure(e))
	startFail := sum.Present(sum.Failure[int]("e"))
	backFail := Transpose(opt.Transpose(startFail))
	if !backFail.IsPresent() || backFail.Unwrap().UnwrapErr() != "e" {
		t.Fatalf("expected the round trip to restore Present(Failure(e))")
	}

	// Absent -> Success(Absent) -> Absent
	backAbsent := Transpose(opt.Transpose(sum.Absent[sum.Result[int, string]]()))
	if !backAbsent.IsAbsent() {
		t.Fatalf("expected the round trip to restore Absent")
	}

	// and in the other direction: Success(Absent) -> Absent -> Success(Absent)
	other := opt.Transpose(Transpose(sum.Success[string](sum.Absent[int]())))
	if !other.IsSuccess() || !other.Unwrap().IsAbsent() {
		t.Fatalf("expected the round trip to restore Success(Absent)")
	}
}
