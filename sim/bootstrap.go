package sim

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/skyship/ecs"
)

// BootstrapOptions describes the initial world.
type BootstrapOptions struct {
	PlayerStart mgl64.Vec2
	Friction    float64
	MaxSpeed    float64

	// AmbientCount Bounded ships are scattered inside the boundary, each moving at AmbientSpeed.
	AmbientCount int
	AmbientSpeed float64
	Seed         uint64

	Viewport mgl64.Vec2
}

// DefaultBootstrapOptions mirrors the shipped configuration file.
func DefaultBootstrapOptions() BootstrapOptions {
	return BootstrapOptions{
		PlayerStart:  mgl64.Vec2{100, 100},
		Friction:     0.97,
		MaxSpeed:     1000,
		AmbientCount: 24,
		AmbientSpeed: 120,
		Seed:         7,
		Viewport:     mgl64.Vec2{1280, 720},
	}
}

var pastelTints = []Tint{
	{R: 1.00, G: 0.70, B: 0.73, A: 1},
	{R: 0.70, G: 0.90, B: 0.99, A: 1},
	{R: 1.00, G: 0.87, B: 0.73, A: 1},
	{R: 0.73, G: 1.00, B: 0.79, A: 1},
	{R: 1.00, G: 0.78, B: 0.87, A: 1},
	{R: 0.85, G: 0.73, B: 1.00, A: 1},
}

// Bootstrap spawns the initial entities and inserts every resource the systems need.
// It returns the player entity.
func Bootstrap(storage *ecs.Storage, opts BootstrapOptions, tuning Tuning) ecs.EntityId {
	player := storage.Spawn(
		Player{},
		Position{opts.PlayerStart},
		Velocity{},
		Friction(opts.Friction),
		MaxSpeed(opts.MaxSpeed),
		PlayerState{Current: Idle, Previous: Idle},
		AnimatedVisual(tuning.IdleCycle, 0),
		White,
	)

	storage.Spawn(
		Position{mgl64.Vec2{300, 300}},
		StaticVisual("ship_0"),
		Tint{R: 0.3, A: 1},
	)

	spawnAmbient(storage, opts, tuning.Boundary)

	storage.AddSingleton(PlayerEntity{Id: player})
	storage.AddSingleton(tuning)
	storage.AddSingleton(Camera{Viewport: opts.Viewport})
	storage.AddSingleton(InputState{})
	storage.AddSingleton(FpsDebug{})

	return player
}

func spawnAmbient(storage *ecs.Storage, opts BootstrapOptions, boundary float64) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	spread := boundary * 0.9

	for i := range opts.AmbientCount {
		angle := rng.Float64() * 2 * math.Pi
		storage.Spawn(
			Position{mgl64.Vec2{(rng.Float64()*2 - 1) * spread, (rng.Float64()*2 - 1) * spread}},
			Velocity{mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(opts.AmbientSpeed)},
			Bounded{},
			StaticVisual("ship_0"),
			pastelTints[i%len(pastelTints)],
		)
	}
}
