package engine

import "github.com/solarlune/resolv"

// Collisions returns every object carrying one of tags whose box overlaps
// obj. The spatial hash narrows the candidates to neighbouring cells and an
// exact box test filters them. With no tags, any object matches.
//
// obj must belong to a space; objects outside the space's bounds are never
// returned.
func Collisions(obj *resolv.Object, tags ...string) []*resolv.Object {
	return CollisionsAt(obj, 0, 0, tags...)
}

// CollisionsAt is Collisions with obj displaced by (dx, dy) for the query.
// obj itself is left where it is.
func CollisionsAt(obj *resolv.Object, dx, dy float64, tags ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}

	c := obj.Check(dx, dy, tags...)
	if c == nil {
		return nil
	}

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]struct{}, len(c.Objects))
	for _, other := range c.Objects {
		if other == obj {
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		if overlapsAt(obj, dx, dy, other) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Colliding reports whether obj overlaps anything carrying one of tags.
func Colliding(obj *resolv.Object, tags ...string) bool {
	return len(Collisions(obj, tags...)) > 0
}

func overlapsAt(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	x, y := a.X+dx, a.Y+dy
	return x < b.X+b.W && x+a.W > b.X &&
		y < b.Y+b.H && y+a.H > b.Y
}
