package ecs

import "reflect"

// Preparer is implemented by systems that need a hook before any entity is
// touched. Pre runs even when nothing matches.
type Preparer interface {
	Pre() error
}

// Finisher is implemented by systems that need a hook after the run.
type Finisher interface {
	Post() error
}

// Notifier is implemented by systems that want to know which entities entered
// or left their matched set since the previous run. A Notify method with any
// other signature does not count.
type Notifier interface {
	Notify(kind Notification, entities []Entity) error
}

var (
	preparerType = reflect.TypeFor[Preparer]()
	finisherType = reflect.TypeFor[Finisher]()
	notifierType = reflect.TypeFor[Notifier]()
)

func HasPre[T any]() bool {
	return reflect.TypeFor[T]().Implements(preparerType)
}

func HasPost[T any]() bool {
	return reflect.TypeFor[T]().Implements(finisherType)
}

func HasNotify[T any]() bool {
	return reflect.TypeFor[T]().Implements(notifierType)
}

// CallPre invokes sys.Pre if sys is a Preparer and does nothing otherwise.
func CallPre[T any](sys T) error {
	if p, ok := any(sys).(Preparer); ok {
		return p.Pre()
	}
	return nil
}

// CallPost invokes sys.Post if sys is a Finisher and does nothing otherwise.
func CallPost[T any](sys T) error {
	if f, ok := any(sys).(Finisher); ok {
		return f.Post()
	}
	return nil
}

// CallNotify invokes sys.Notify if sys is a Notifier and does nothing otherwise.
func CallNotify[T any](sys T, kind Notification, entities []Entity) error {
	if n, ok := any(sys).(Notifier); ok {
		return n.Notify(kind, entities)
	}
	return nil
}

func nopHook() error { return nil }

func nopNotify(Notification, []Entity) error { return nil }

// Capabilities is the hook table of one system instance, resolved once by
// Introspect. Absent hooks are bound to no-ops, so the Call methods never
// branch.
type Capabilities struct {
	pre    func() error
	post   func() error
	notify func(Notification, []Entity) error

	hasPre, hasPost, hasNotify bool
}

// Introspect resolves the optional hooks of sys.
func Introspect(sys any) Capabilities {
	c := Capabilities{
		pre:    nopHook,
		post:   nopHook,
		notify: nopNotify,
	}
	if p, ok := sys.(Preparer); ok {
		c.pre, c.hasPre = p.Pre, true
	}
	if f, ok := sys.(Finisher); ok {
		c.post, c.hasPost = f.Post, true
	}
	if n, ok := sys.(Notifier); ok {
		c.notify, c.hasNotify = n.Notify, true
	}
	return c
}

func (c Capabilities) HasPre() bool    { return c.hasPre }
func (c Capabilities) HasPost() bool   { return c.hasPost }
func (c Capabilities) HasNotify() bool { return c.hasNotify }

func (c Capabilities) CallPre() error  { return c.pre() }
func (c Capabilities) CallPost() error { return c.post() }

func (c Capabilities) CallNotify(kind Notification, entities []Entity) error {
	return c.notify(kind, entities)
}
