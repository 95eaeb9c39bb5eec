// harness/fixture.go
package harness

// Fixture provides setup and teardown hooks run around a check body.
// TearDown runs unconditionally, including when the body fails, so a
// fixture can always undo whatever SetUp arranged.
type Fixture interface {
	SetUp()
	TearDown()
}

// RegisterFixture registers a check whose body runs between fx.SetUp and
// fx.TearDown. The teardown is deferred, so a failing assertion in the body
// still unwinds through it before the runner recovers.
func (r *Registry) RegisterFixture(name string, fx Fixture, fn Func) {
	if fx == nil {
		panic("nil fixture for check " + name)
	}
	r.Register(name, func(t *T) {
		fx.SetUp()
		defer fx.TearDown()
		fn(t)
	})
}

// RegisterFixture adds a fixture-wrapped check to the ambient catalog.
func RegisterFixture(name string, fx Fixture, fn Func) {
	Default.RegisterFixture(name, fx, fn)
}
