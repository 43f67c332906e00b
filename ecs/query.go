package ecs

import "github.com/milk9111/tilegame/ecs/component"

// ForEach calls fn for every live entity that has a.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeOf(w, ka, false)
	if sa == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

// ForEach2 calls fn for every live entity that has both a and b.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeOf(w, ka, false)
	sb := storeOf(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 calls fn for every live entity that has a, b and c.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeOf(w, ka, false)
	sb := storeOf(w, kb, false)
	sc := storeOf(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

// ForEach4 calls fn for every live entity that has a, b, c and d.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := storeOf(w, ka, false)
	sb := storeOf(w, kb, false)
	sc := storeOf(w, kc, false)
	sd := storeOf(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		d, okD := sd.get(id)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}
