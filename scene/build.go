package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/vmath"
)

// Scene is a built spline network with the walker's starting place
type Scene struct {
	Registry *spline.Registry
	Spawn    *spline.Spline
	SpawnT   float64
	Forward  bool
}

// Build constructs every spline, then links, then transitions
// Links are applied in file order, so a later link sees attributes copied by an earlier one
func Build(f *File) (*Scene, error) {
	reg := spline.NewRegistry()
	for i := range f.Splines {
		s, err := buildSpline(&f.Splines[i])
		if err != nil {
			return nil, err
		}
		if err := reg.Register(s); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	for i, l := range f.Links {
		from, err := pointRef(reg, l.From)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		to, err := pointRef(reg, l.To)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		b := spline.Connection
		if l.Behavior != nil {
			if b, err = spline.ParseBehavior(l.Behavior); err != nil {
				return nil, fmt.Errorf("link %d: %w", i, err)
			}
		}
		if err := reg.Links().Add(from, to, b); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
	}

	for i, tr := range f.Transitions {
		if err := addTransition(reg, tr); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
	}

	if f.Walker.Spline == "" {
		return nil, ErrNoSpawn
	}
	spawn, ok := reg.ByName(f.Walker.Spline)
	if !ok {
		return nil, fmt.Errorf("walker spawn %q: %w", f.Walker.Spline, ErrUnknownSpline)
	}
	return &Scene{
		Registry: reg,
		Spawn:    spawn,
		SpawnT:   vmath.Clamp01(f.Walker.T),
		Forward:  !f.Walker.Reverse,
	}, nil
}

func buildSpline(ss *SplineSpec) (*spline.Spline, error) {
	typ, err := spline.ParseType(ss.Type)
	if err != nil {
		return nil, fmt.Errorf("scene: spline %q: %w", ss.Name, err)
	}
	s := spline.New(ss.Name, typ)
	s.SetLoop(ss.Loop)

	for i, ps := range ss.Points {
		p := spline.NewPoint(vec(ps.Position))
		if ps.Mode != "" {
			m, err := spline.ParseHandleMode(ps.Mode)
			if err != nil {
				return nil, fmt.Errorf("scene: %s[%d]: %w", ss.Name, i, err)
			}
			p.SetMode(m)
		}
		if err := s.AddPoint(p); err != nil {
			return nil, fmt.Errorf("scene: %s[%d]: %w", ss.Name, i, err)
		}
		setHandles(p, ps)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene: spline %q: %w", ss.Name, err)
	}

	switch strings.ToLower(ss.Construct) {
	case "":
	case "linear":
		s.ConstructLinear()
	case "smooth", "auto":
		s.AutoConstruct()
	case "catmull":
		s.AutoConstructCatmull()
	default:
		return nil, fmt.Errorf("spline %q %q: %w", ss.Name, ss.Construct, ErrBadConstruct)
	}
	return s, nil
}

// setHandles applies explicit handles; a Free point keeps both as given,
// otherwise the preceding handle wins and the mode derives the other
func setHandles(p *spline.Point, ps PointSpec) {
	switch {
	case ps.Preceding != nil && ps.Following != nil && p.Mode() == spline.Free:
		p.SetHandlesFree(vec(*ps.Preceding), vec(*ps.Following))
	case ps.Preceding != nil:
		p.SetPrecedingHandle(vec(*ps.Preceding))
	case ps.Following != nil:
		p.SetFollowingHandle(vec(*ps.Following))
	}
}

func addTransition(reg *spline.Registry, tr TransSpec) error {
	host, ok := reg.ByName(tr.Host)
	if !ok {
		return fmt.Errorf("host %q: %w", tr.Host, ErrUnknownSpline)
	}
	dest, ok := reg.ByName(tr.Destination)
	if !ok {
		return fmt.Errorf("destination %q: %w", tr.Destination, ErrUnknownSpline)
	}
	contact := host.Point(tr.Contact)
	if contact == nil {
		return fmt.Errorf("contact %s:%d: %w", tr.Host, tr.Contact, ErrBadPointRef)
	}
	key, err := spline.ParseTransitionKey(tr.Key)
	if err != nil {
		return err
	}
	host.AddTransition(tr.Min, tr.Max, key, contact, dest, tr.DestinationT)
	return nil
}

// pointRef resolves "name:index"; the name may itself contain colons
func pointRef(reg *spline.Registry, ref string) (*spline.Point, error) {
	i := strings.LastIndexByte(ref, ':')
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", ref, ErrBadPointRef)
	}
	name, idx := ref[:i], ref[i+1:]
	s, ok := reg.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSpline)
	}
	n, err := strconv.Atoi(idx)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", ref, ErrBadPointRef)
	}
	p := s.Point(n)
	if p == nil {
		return nil, fmt.Errorf("%q: %w", ref, ErrBadPointRef)
	}
	return p, nil
}

func vec(a [3]float64) vmath.Vec3F { return vmath.Vec3F{X: a[0], Y: a[1], Z: a[2]} }
