package feature

// Resolve computes the closure of the requested capability names: every
// requested capability's bindings, plus the bindings of everything reachable
// through requires edges and umbrella membership. Resolution is a fixpoint
// reachability pass over the static lattice; the result is deterministic and
// idempotent (resolving the capability closure of a result reproduces it).
//
// Multiple modes of the same subsystem union rather than override. A
// subsystem declared with ExclusiveModes fails with
// ConflictingParameterizationError when two modes end up active; unknown
// names fail with UnknownCapabilityError. Errors are fatal: no partial
// closure is returned.
func (l *Lattice) Resolve(requested ...Name) (ActivationSet, error) {
	names, err := l.CapabilityClosure(requested...)
	if err != nil {
		return ActivationSet{}, err
	}

	out := ActivationSet{items: make(map[Activation]struct{})}
	for _, name := range names {
		c, ok := l.capabilities[name]
		if !ok {
			// Umbrellas carry no bindings of their own.
			continue
		}
		for _, b := range c.Bindings {
			out.items[b.Activation] = struct{}{}
		}
	}

	if err := l.checkExclusive(out); err != nil {
		return ActivationSet{}, err
	}
	return out, nil
}

// CapabilityClosure returns every declared name reachable from the requested
// set, including the requested names themselves, in deterministic order
// (breadth-first from the request). Reachability follows requires edges and
// umbrella member lists.
func (l *Lattice) CapabilityClosure(requested ...Name) ([]Name, error) {
	seen := make(map[Name]struct{}, len(requested))
	var order []Name

	queue := make([]Name, len(requested))
	copy(queue, requested)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		if _, done := seen[name]; done {
			continue
		}

		if u, ok := l.umbrellas[name]; ok {
			seen[name] = struct{}{}
			order = append(order, name)
			queue = append(queue, u.Members...)
			continue
		}

		c, ok := l.capabilities[name]
		if !ok {
			return nil, &UnknownCapabilityError{Name: name}
		}
		seen[name] = struct{}{}
		order = append(order, name)
		queue = append(queue, c.Requires...)
	}

	return order, nil
}

// ResolveUmbrella resolves the umbrella's member list. Equivalent to calling
// Resolve with every member; the umbrella-equivalence invariant (closure of
// the umbrella equals the union of per-member closures) is pinned by the test
// suite.
func (l *Lattice) ResolveUmbrella(name Name) (ActivationSet, error) {
	u, ok := l.umbrellas[name]
	if !ok {
		return ActivationSet{}, &UnknownCapabilityError{Name: name}
	}
	return l.Resolve(u.Members...)
}

// checkExclusive rejects closures activating two modes of a subsystem that
// cannot host both simultaneously.
func (l *Lattice) checkExclusive(set ActivationSet) error {
	for _, subsystem := range set.Subsystems() {
		decl := l.subsystems[subsystem]
		if !decl.ExclusiveModes {
			continue
		}
		modes := set.Modes(subsystem)
		if len(modes) > 1 {
			return &ConflictingParameterizationError{
				Subsystem: subsystem,
				ModeA:     modes[0],
				ModeB:     modes[1],
			}
		}
	}
	return nil
}
