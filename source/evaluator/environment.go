package evaluator

// An Environment is a frame of name-to-value bindings. The Ext field points at
// the enclosing frame, nil for the outermost one, so lookup walks outwards
// while Set always binds locally, shadowing any outer binding of the same
// name.
type Environment struct {
	store map[string]float64
	Ext   *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]float64)}
}

func NewEnclosedEnvironment(ext *Environment) *Environment {
	env := NewEnvironment()
	env.Ext = ext
	return env
}

func (e *Environment) Get(name string) (float64, bool) {
	value, ok := e.store[name]
	if !ok && e.Ext != nil {
		return e.Ext.Get(name)
	}
	return value, ok
}

func (e *Environment) Exists(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set binds name in this frame.
func (e *Environment) Set(name string, value float64) {
	e.store[name] = value
}

// Assign rebinds name in the innermost frame that already holds it, returning
// false if no frame does.
func (e *Environment) Assign(name string, value float64) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = value
		return true
	}
	if e.Ext != nil {
		return e.Ext.Assign(name, value)
	}
	return false
}
