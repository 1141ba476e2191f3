package envvar

import "os"

// Var binds a configuration attribute to a named process environment variable
// with an optional static default. A Var stores no resolved value: every call
// to Resolve performs a fresh lookup, so the result always reflects the
// current environment. Vars are immutable after construction and safe for
// concurrent use.
type Var struct {
	name string
	def  *string
}

// New creates a Var without a default. Resolving it while the variable is
// unset yields the absent Value.
func New(name string) Var {
	return Var{name: name}
}

// WithDefault creates a Var that falls back to def when the variable is unset.
func WithDefault(name, def string) Var {
	return Var{name: name, def: &def}
}

// Name returns the bound environment variable name.
func (v Var) Name() string {
	return v.name
}

// Default returns the fallback value and whether one is configured.
func (v Var) Default() (string, bool) {
	if v.def == nil {
		return "", false
	}
	return *v.def, true
}

// Resolve looks up the variable in the current process environment. A set
// variable is returned verbatim, including when it is set to the empty
// string. An unset variable yields the default when one is configured,
// otherwise the absent Value. Resolution never fails.
func (v Var) Resolve() Value {
	if val, ok := os.LookupEnv(v.name); ok {
		return Present(val)
	}
	if v.def != nil {
		return Present(*v.def)
	}
	return Absent()
}
