package spline

import "github.com/lixenwraith/rail-walker/vmath"

// ConstructLinear places both handles of every segment at the segment midpoint
// Points switch to Free so each segment is a straight line
func (s *Spline) ConstructLinear() {
	n := len(s.points)
	for i, p := range s.points {
		p.mode = Free
		if i == n-1 && !s.loop {
			break
		}
		next := s.points[(i+1)%n]
		mid := vmath.V3FScale(vmath.V3FAdd(p.position, next.position), 0.5)
		p.SetFollowingHandle(mid)
		next.SetPrecedingHandle(mid)
	}
}

// AutoConstruct fits a C2-smooth curve through the points by solving the
// tridiagonal system for first control points; points become Mirrored
func (s *Spline) AutoConstruct() {
	if !s.Initialized() {
		return
	}
	for _, p := range s.points {
		p.mode = Mirrored
	}

	pts := s.points
	n := len(pts) - 1
	pos := func(i int) vmath.Vec3F { return pts[i].position }

	if n == 1 {
		c0 := vmath.V3FScale(vmath.V3FAdd(vmath.V3FScale(pos(0), 2), pos(1)), 1.0/3)
		pts[0].SetFollowingHandle(c0)
		pts[1].SetPrecedingHandle(vmath.V3FSub(vmath.V3FScale(c0, 2), pos(0)))
		return
	}

	size := n
	if s.loop {
		size = n + 1
	}
	rhs := make([]vmath.Vec3F, size)
	for i := 1; i < n-1; i++ {
		rhs[i] = vmath.V3FAdd(vmath.V3FScale(pos(i), 4), vmath.V3FScale(pos(i+1), 2))
	}
	rhs[0] = vmath.V3FAdd(pos(0), vmath.V3FScale(pos(1), 2))
	if !s.loop {
		rhs[n-1] = vmath.V3FScale(vmath.V3FAdd(vmath.V3FScale(pos(n-1), 8), pos(n)), 0.5)
	} else {
		rhs[n-1] = vmath.V3FAdd(vmath.V3FScale(pos(n-1), 4), vmath.V3FScale(pos(n), 2))
		rhs[n] = vmath.V3FScale(vmath.V3FAdd(vmath.V3FScale(pos(n), 8), pos(0)), 0.5)
	}

	cp := solveFirstControlPoints(rhs)

	for i := 0; i < n; i++ {
		pts[i].SetFollowingHandle(cp[i])
		switch {
		case s.loop || i < n-1:
			pts[i+1].SetPrecedingHandle(vmath.V3FSub(vmath.V3FScale(pos(i+1), 2), cp[i+1]))
		default:
			pts[i+1].SetPrecedingHandle(vmath.V3FScale(vmath.V3FAdd(pos(n), cp[n-1]), 0.5))
		}
	}

	if s.loop {
		length := vmath.V3FDistance(pts[0].FollowingHandle(), pos(0))
		dir := vmath.V3FNormalize(vmath.V3FSub(pos(n), pos(1)))
		pts[0].SetPrecedingHandle(vmath.V3FAdd(pos(0), vmath.V3FScale(dir, length)))
	}
}

// solveFirstControlPoints runs the Thomas algorithm on the [1 2 / 1 4 1 / 2 7] system
func solveFirstControlPoints(rhs []vmath.Vec3F) []vmath.Vec3F {
	n := len(rhs)
	x := make([]vmath.Vec3F, n)
	tmp := make([]float64, n)

	b := 2.0
	x[0] = vmath.V3FScale(rhs[0], 1/b)
	for i := 1; i < n; i++ {
		tmp[i] = 1 / b
		if i < n-1 {
			b = 4 - tmp[i]
		} else {
			b = 3.5 - tmp[i]
		}
		x[i] = vmath.V3FScale(vmath.V3FSub(rhs[i], x[i-1]), 1/b)
	}
	for i := 1; i < n; i++ {
		x[n-i-1] = vmath.V3FSub(x[n-i-1], vmath.V3FScale(x[n-i], tmp[n-i]))
	}
	return x
}

// AutoConstructCatmull derives handles from neighbour positions, Catmull-Rom style
func (s *Spline) AutoConstructCatmull() {
	pts := s.points
	count := len(pts)
	if count < 2 {
		return
	}
	for i := 0; i < count; i++ {
		var prev, p1, p2 vmath.Vec3F
		switch {
		case i > 0:
			prev = pts[i-1].position
		case s.loop:
			prev = pts[count-1].position
		default:
			prev = pts[0].position
		}

		switch {
		case s.loop:
			p1 = pts[(i+1)%count].position
			p2 = pts[(i+2)%count].position
		case i < count-2:
			p1, p2 = pts[i+1].position, pts[i+2].position
		case i == count-2:
			p1, p2 = pts[i+1].position, pts[i+1].position
		default:
			p1, p2 = pts[i].position, pts[i].position
		}

		cur := pts[i]
		cur.mode = Mirrored
		cur.SetFollowingHandle(vmath.V3FAdd(cur.position, vmath.V3FScale(vmath.V3FSub(p1, prev), 1.0/6)))

		preceding := vmath.V3FSub(p1, vmath.V3FScale(vmath.V3FSub(p2, cur.position), 1.0/6))
		if i < count-1 {
			pts[i+1].SetPrecedingHandle(preceding)
		} else if s.loop {
			pts[0].SetPrecedingHandle(preceding)
		}
	}
}
