package dom

import "github.com/go-drift/domfocus/pkg/event"

// ElementLike is implemented by *Element and by its external wrapper *Proxy.
type ElementLike interface {
	canonical() *Element
}

// resolve returns the engine element behind el, or nil.
func resolve(el ElementLike) *Element {
	if el == nil {
		return nil
	}
	return el.canonical()
}

// Proxy is the external-facing handle for an element, as held by scripting
// surfaces. Each element has exactly one Proxy.
type Proxy struct {
	el *Element
}

// Proxy returns the element's external handle.
func (e *Element) Proxy() *Proxy {
	if e.proxy == nil {
		e.proxy = &Proxy{el: e}
	}
	return e.proxy
}

func (p *Proxy) canonical() *Element {
	if p == nil {
		return nil
	}
	return p.el
}

// Element returns the engine element behind the handle.
func (p *Proxy) Element() *Element {
	return p.el
}

func (p *Proxy) Focus() { Focus(p) }

func (p *Proxy) Blur() { Blur(p) }

func (p *Proxy) TagName() string { return p.el.TagName() }

func (p *Proxy) ID() string { return p.el.ID() }

func (p *Proxy) GetAttribute(name string) (string, bool) { return p.el.GetAttribute(name) }

func (p *Proxy) SetAttribute(name, value string) error { return p.el.SetAttribute(name, value) }

func (p *Proxy) RemoveAttribute(name string) { p.el.RemoveAttribute(name) }

// ParentNode returns the parent node, or nil.
func (p *Proxy) ParentNode() Node {
	return p.el.ParentNode()
}

// ParentElement returns the handle of the parent element, or nil when the
// parent is not an element.
func (p *Proxy) ParentElement() *Proxy {
	if parent := p.el.ParentElement(); parent != nil {
		return parent.Proxy()
	}
	return nil
}

func (p *Proxy) AddEventListener(typ string, fn event.Listener, opts event.Options) event.ListenerID {
	return p.el.AddEventListener(typ, fn, opts)
}

func (p *Proxy) RemoveEventListener(typ string, id event.ListenerID) {
	p.el.RemoveEventListener(typ, id)
}

func (p *Proxy) DispatchEvent(inst event.Instance) (bool, error) {
	return p.el.DispatchEvent(inst)
}

func (p *Proxy) String() string { return p.el.String() }
