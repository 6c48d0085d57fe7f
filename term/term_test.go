package term

import "testing"

func TestEqual(t *testing.T) {
	nil_ := Abs{Body: Abs{Body: Var{Index: 0}}}
	nilCopy := Abs{Body: Abs{Body: Var{Index: 0}}}
	cons := Abs{Body: Abs{Body: App{Func: App{Func: Var{Index: 1}, Arg: Var{Index: 3}}, Arg: Var{Index: 2}}}}

	tests := []struct {
		name string
		a, b Term
		want bool
	}{
		{name: "identical nils are equal", a: nil_, b: nilCopy, want: true},
		{name: "nil and cons differ", a: nil_, b: cons, want: false},
		{name: "var index mismatch", a: Var{Index: 0}, b: Var{Index: 1}, want: false},
		{name: "different constructors", a: Var{Index: 0}, b: Abs{Body: Var{Index: 0}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShift(t *testing.T) {
	// \ 0 1 -- binder-local var 0 stays, free var 1 shifts by delta.
	body := Abs{Body: App{Func: Var{Index: 0}, Arg: Var{Index: 1}}}
	shifted := Shift(body, 3)

	want := Abs{Body: App{Func: Var{Index: 0}, Arg: Var{Index: 4}}}
	if !Equal(shifted, want) {
		t.Errorf("Shift() = %s, want %s", String(shifted), String(want))
	}
}

func TestSubstituteIdentityAppliedToIdentity(t *testing.T) {
	// (\0) (\0) -- applying the identity function to itself reduces (via
	// Substitute) to the identity function.
	identity := Abs{Body: Var{Index: 0}}
	result := Substitute(identity.Body, identity)

	if !Equal(result, identity) {
		t.Errorf("Substitute() = %s, want λ 0", String(result))
	}
}

func TestSubstituteShiftsFreeVariablesOfReplacement(t *testing.T) {
	// \ 1 -- body refers to a variable free relative to the substituted
	// position; substituting a term that itself contains a free variable
	// must shift that free variable across the newly entered binder.
	body := Abs{Body: Var{Index: 1}}
	replacement := Var{Index: 5}

	result := Substitute(body, replacement)
	if !Equal(result, Abs{Body: Var{Index: 6}}) {
		t.Errorf("Substitute() = %s, want λ 6 (replacement's free 5 shifted by the one binder crossed)", String(result))
	}
}

func TestStringRendersDeBruijnForm(t *testing.T) {
	id := Abs{Body: Var{Index: 0}}
	if got, want := String(id), "λ 0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	app := App{Func: Var{Index: 0}, Arg: Var{Index: 1}}
	if got, want := String(app), "(0 1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
