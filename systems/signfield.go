package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
)

// FieldParams are the fixed constants of a sign field.
type FieldParams struct {
	Count      int     // Signs spawned at construction
	Size       float64 // Glyph size and collision diameter
	Speed      float64 // Velocity magnitude per frame
	Max        int     // Population cap
	CooldownMS float64 // Duplication cooldown per sign
}

// ParamsFromConfig builds field params from the signs config section.
func ParamsFromConfig(cfg config.SignsConfig) FieldParams {
	return FieldParams{
		Count:      cfg.Count,
		Size:       cfg.Size,
		Speed:      cfg.Speed,
		Max:        cfg.Max,
		CooldownMS: cfg.CooldownMS,
	}
}

// FrameStats counts what happened during one Update.
type FrameStats struct {
	EdgeBounces        int
	ObstacleBounces    int
	Collisions         int // overlapping pairs resolved
	Spawns             int
	SuppressedCooldown int // collisions that could not duplicate: a sign was cooling
	SuppressedCap      int // collisions that could not duplicate: population at cap
}

// Add accumulates other into s.
func (s *FrameStats) Add(other FrameStats) {
	s.EdgeBounces += other.EdgeBounces
	s.ObstacleBounces += other.ObstacleBounces
	s.Collisions += other.Collisions
	s.Spawns += other.Spawns
	s.SuppressedCooldown += other.SuppressedCooldown
	s.SuppressedCap += other.SuppressedCap
}

// pendingSign is a sign queued during a frame and created after it.
type pendingSign struct {
	pos components.Position
	vel components.Velocity
}

// SignField owns every sign and steps them once per frame.
// Signs are never removed; index order is creation order.
type SignField struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Sign]
	filter *ecs.Filter1[components.Velocity]

	order   []ecs.Entity
	pending []pendingSign

	params FieldParams
	rng    *rand.Rand
	nextID uint32
}

// NewSignField creates a field and spawns params.Count signs at the
// center of bounds, each heading in a uniformly random direction.
func NewSignField(params FieldParams, bounds Bounds, rng *rand.Rand) *SignField {
	f := &SignField{
		world:  ecs.NewWorld(),
		params: params,
		rng:    rng,
		order:  make([]ecs.Entity, 0, params.Max),
	}
	f.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Sign](f.world)
	f.filter = ecs.NewFilter1[components.Velocity](f.world)

	center := components.Position{
		X: bounds.Width/2 - params.Size/2,
		Y: bounds.Height/2 - params.Size/2,
	}
	for i := 0; i < params.Count && i < params.Max; i++ {
		f.spawn(center, f.randomVelocity(), components.Sign{})
	}

	return f
}

// randomVelocity returns a vector of magnitude Speed in a random direction.
func (f *SignField) randomVelocity() components.Velocity {
	angle := f.rng.Float64() * 2 * math.Pi
	return components.Velocity{
		X: math.Cos(angle) * f.params.Speed,
		Y: math.Sin(angle) * f.params.Speed,
	}
}

// spawn creates a sign entity and appends it to the ordered list.
func (f *SignField) spawn(pos components.Position, vel components.Velocity, sign components.Sign) ecs.Entity {
	sign.ID = f.nextID
	f.nextID++
	e := f.mapper.NewEntity(&pos, &vel, &sign)
	f.order = append(f.order, e)
	return e
}

// Update advances the field by one frame. now is the frame timestamp in
// milliseconds; obstacles is sampled once, at the start of the frame.
func (f *SignField) Update(now float64, bounds Bounds, obstacles ObstacleSource) FrameStats {
	var stats FrameStats
	var rects []Rect
	if obstacles != nil {
		rects = obstacles()
	}

	size := f.params.Size
	f.pending = f.pending[:0]

	for i, e := range f.order {
		pos, vel, sign := f.mapper.Get(e)

		advance(pos, vel)
		stats.EdgeBounces += bounceEdges(pos, vel, size, bounds)
		stats.ObstacleBounces += bounceObstacles(pos, vel, size, rects)

		for _, other := range f.order[i+1:] {
			pos2, vel2, sign2 := f.mapper.Get(other)

			dist := r2.Norm(r2.Sub(pos2.Vec(), pos.Vec()))
			if dist >= size {
				continue
			}
			stats.Collisions++

			switch {
			case sign.Cooling(now, f.params.CooldownMS) || sign2.Cooling(now, f.params.CooldownMS):
				stats.SuppressedCooldown++
			case len(f.order)+len(f.pending) >= f.params.Max:
				stats.SuppressedCap++
			default:
				mid := r2.Scale(0.5, r2.Add(pos.Vec(), pos2.Vec()))
				f.pending = append(f.pending, pendingSign{
					pos: components.Position(mid),
					vel: f.randomVelocity(),
				})
				sign.MarkCollision(now)
				sign2.MarkCollision(now)
				stats.Spawns++
			}

			separate(pos, pos2, vel, vel2, size, dist)
		}

		confine(pos, size, bounds)
	}

	for _, p := range f.pending {
		// Newborns start cooling so they cannot duplicate right away.
		born := components.Sign{}
		born.MarkCollision(now)
		confine(&p.pos, size, bounds)
		f.spawn(p.pos, p.vel, born)
	}

	return stats
}

// Count returns the number of live signs.
func (f *SignField) Count() int {
	return len(f.order)
}

// Cap returns the population cap.
func (f *SignField) Cap() int {
	return f.params.Max
}

// Params returns the field constants.
func (f *SignField) Params() FieldParams {
	return f.params
}

// Each calls fn for every sign in index order.
// fn must not retain the pointers past the call.
func (f *SignField) Each(fn func(i int, pos *components.Position, vel *components.Velocity, sign *components.Sign)) {
	for i, e := range f.order {
		pos, vel, sign := f.mapper.Get(e)
		fn(i, pos, vel, sign)
	}
}

// SpeedsInto appends every sign's speed to dst and returns it.
func (f *SignField) SpeedsInto(dst []float64) []float64 {
	query := f.filter.Query()
	for query.Next() {
		vel := query.Get()
		dst = append(dst, r2.Norm(vel.Vec()))
	}
	return dst
}
