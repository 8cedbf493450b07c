package player

// Flag is a single player argument: either a bare switch such as --mute or
// a named value such as --volume=80.
type Flag struct {
	Name   string
	Value  string
	valued bool
}

// Bare returns a flag passed without a value.
func Bare(name string) Flag {
	return Flag{Name: name}
}

// Valued returns a flag passed as name=value.
func Valued(name, value string) Flag {
	return Flag{Name: name, Value: value, valued: true}
}

// HasValue reports whether the flag carries a value.
// An empty value given to Valued still counts.
func (f Flag) HasValue() bool {
	return f.valued
}

// Arg returns the flag as a single command-line argument.
func (f Flag) Arg() string {
	if f.valued {
		return f.Name + "=" + f.Value
	}
	return f.Name
}

func (f Flag) String() string {
	return f.Arg()
}
