package flux

// Scope derives a focused child store from parent: reading projects the
// parent state, sending embeds the child action back into the parent action
// type. The derived store owns no state of its own; it is a read/route
// view, never an independent source of truth.
//
// Scoped handles compose: scoping a scoped handle focuses further down the
// state tree. Lifetime follows the parent; there is nothing to close beyond
// cancelling Observe registrations.
func Scope[PS, PA, CS, CA any](parent Handle[PS, PA], project func(PS) CS, embed func(CA) PA) Handle[CS, CA] {
	return &scoped[PS, PA, CS, CA]{parent: parent, project: project, embed: embed}
}

type scoped[PS, PA, CS, CA any] struct {
	parent  Handle[PS, PA]
	project func(PS) CS
	embed   func(CA) PA
}

func (v *scoped[PS, PA, CS, CA]) State() CS {
	return v.project(v.parent.State())
}

func (v *scoped[PS, PA, CS, CA]) Send(action CA) {
	v.parent.Send(v.embed(action))
}

func (v *scoped[PS, PA, CS, CA]) Observe(fn func(CS)) (cancel func()) {
	return v.parent.Observe(func(s PS) { fn(v.project(s)) })
}
