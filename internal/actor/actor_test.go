package actor

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

const eps = 1e-9

func near(a, b core.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// recordingSurface collects immediate draws.
type recordingSurface struct {
	rects  []core.MeshRect
	meshes int
}

func (s *recordingSurface) FillRect(r core.Rect, c core.Color) error {
	s.rects = append(s.rects, core.MeshRect{Rect: r, Color: c})
	return nil
}

func (s *recordingSurface) DrawMesh(m *core.MeshBuilder) error {
	s.meshes++
	s.rects = append(s.rects, m.Rects()...)
	return nil
}

func (s *recordingSurface) DrawText(core.Text) error {
	return nil
}

func TestBulletLinearMotion(t *testing.T) {
	b := NewBullet(core.V(0, 0), core.V(10, 10), core.V(10, 0))

	for i := 0; i < 2; i++ {
		if err := b.Update(0.5); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
	}

	if got := b.Position(); got != core.V(10, 0) {
		t.Errorf("Position() = %v, expected (10, 0)", got)
	}
	if got := b.Velocity(); got != core.V(10, 0) {
		t.Errorf("Velocity() = %v, expected unchanged (10, 0)", got)
	}
}

func TestBodyBoundsAndSetters(t *testing.T) {
	b := NewBullet(core.V(100, 50), core.V(10, 6), core.Vec2{})

	r := b.Bounds()
	if r != core.NewRect(95, 47, 10, 6) {
		t.Errorf("Bounds() = %+v, expected {95 47 10 6}", r)
	}

	b.SetDimensions(core.V(-4, 8))
	if d := b.Dimensions(); d != core.V(0, 8) {
		t.Errorf("SetDimensions(-4, 8) gave %v, expected (0, 8)", d)
	}

	b.SetPosition(core.V(1, 2))
	b.Translate(core.V(3, 4))
	if p := b.Position(); p != core.V(4, 6) {
		t.Errorf("Translate() gave %v, expected (4, 6)", p)
	}

	if b.HasAction() {
		t.Error("Bullet.HasAction() should be false")
	}
	spawned, err := b.Action(1.0/60, NewPlayer(core.V(0, 0), 18, 150), nil)
	if spawned != nil || err != nil {
		t.Errorf("Bullet.Action() = %v, %v; expected nil, nil", spawned, err)
	}
}

func TestDrunkBulletWobbleVanishesAtQuarterTurn(t *testing.T) {
	vel := core.V(30, 40) // |vel| = 50
	d := NewDrunkBullet(core.V(0, 0), core.V(8, 8), vel, DefaultTuning())

	dt := math.Pi / 2
	if err := d.Update(dt); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if math.Abs(d.Phase()-math.Pi/2) > eps {
		t.Errorf("Phase() = %v, expected π/2", d.Phase())
	}

	// cos(π/2) == 0, so only the linear displacement remains
	want := vel.Scale(dt)
	if !near(d.Position(), want, 1e-9) {
		t.Errorf("Position() = %v, expected %v (no wobble)", d.Position(), want)
	}
}

func TestDrunkBulletWobbleAlongVelocity(t *testing.T) {
	vel := core.V(10, 0)
	d := NewDrunkBullet(core.V(0, 0), core.V(8, 8), vel, DefaultTuning())

	dt := 0.1
	if err := d.Update(dt); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	want := core.V(10*dt+DefaultDrunkFactor*dt*math.Cos(dt), 0)
	if !near(d.Position(), want, 1e-9) {
		t.Errorf("Position() = %v, expected %v", d.Position(), want)
	}
}

func TestDrunkBulletPhaseWraps(t *testing.T) {
	d := NewDrunkBullet(core.V(0, 0), core.V(8, 8), core.V(1, 0), DefaultTuning())
	for i := 0; i < 1000; i++ {
		if err := d.Update(0.05); err != nil {
			t.Fatalf("Update() error: %v", err)
		}
		if p := d.Phase(); p < 0 || p >= 2*math.Pi {
			t.Fatalf("Phase() = %v, outside [0, 2π)", p)
		}
	}
}

func TestDrunkBulletZeroVelocity(t *testing.T) {
	lenient := NewDrunkBullet(core.V(5, 5), core.V(8, 8), core.Vec2{}, DefaultTuning())
	if err := lenient.Update(0.1); err != nil {
		t.Fatalf("lenient Update() error: %v", err)
	}
	if lenient.Position() != core.V(5, 5) {
		t.Errorf("lenient Position() = %v, expected unchanged (5, 5)", lenient.Position())
	}

	tuning := DefaultTuning()
	tuning.StrictDirections = true
	strict := NewDrunkBullet(core.V(5, 5), core.V(8, 8), core.Vec2{}, tuning)
	err := strict.Update(0.1)
	if !errors.Is(err, core.ErrDegenerateDirection) {
		t.Fatalf("strict Update() error = %v, expected ErrDegenerateDirection", err)
	}
	if strict.Phase() != 0 {
		t.Errorf("failed Update() changed phase to %v", strict.Phase())
	}
}

func TestHomingBulletRespectsSpeedLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tuning := DefaultTuning()

	for i := 0; i < 500; i++ {
		vel := core.V(rng.Float64()*800-400, rng.Float64()*800-400)
		pos := core.V(rng.Float64()*800, rng.Float64()*600)
		target := core.V(rng.Float64()*800, rng.Float64()*600)
		h := NewHomingBullet(pos, core.V(10, 10), vel, target, tuning)

		for step := 0; step < 5; step++ {
			if err := h.Update(1.0 / 60); err != nil {
				t.Fatalf("Update() error: %v", err)
			}
			if speed := h.Velocity().Len(); speed > tuning.SpeedLimit+1e-9 {
				t.Fatalf("speed %v exceeds limit %v (initial velocity %v)", speed, tuning.SpeedLimit, vel)
			}
		}
	}
}

func TestHomingBulletAcceleratesTowardsTarget(t *testing.T) {
	h := NewHomingBullet(core.V(0, 0), core.V(10, 10), core.Vec2{}, core.V(100, 0), DefaultTuning())

	if err := h.Update(0.5); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	// vel = (1,0) * 50 * 0.5 = (25, 0); pos = vel * 0.5
	if !near(h.Velocity(), core.V(25, 0), eps) {
		t.Errorf("Velocity() = %v, expected (25, 0)", h.Velocity())
	}
	if !near(h.Position(), core.V(12.5, 0), eps) {
		t.Errorf("Position() = %v, expected (12.5, 0)", h.Position())
	}
}

func TestHomingBulletActionRetargets(t *testing.T) {
	h := NewHomingBullet(core.V(0, 0), core.V(10, 10), core.Vec2{}, core.V(1, 1), DefaultTuning())
	player := NewPlayer(core.V(321, 123), 18, 150)

	if !h.HasAction() {
		t.Fatal("HomingBullet.HasAction() should be true")
	}
	spawned, err := h.Action(1.0/60, player, []Actor{h})
	if err != nil || spawned != nil {
		t.Errorf("Action() = %v, %v; expected nil, nil", spawned, err)
	}
	if h.Target() != core.V(321, 123) {
		t.Errorf("Target() = %v, expected player position (321, 123)", h.Target())
	}
}

func TestHomingBulletAtTarget(t *testing.T) {
	vel := core.V(3, 0)
	lenient := NewHomingBullet(core.V(50, 50), core.V(10, 10), vel, core.V(50, 50), DefaultTuning())
	if err := lenient.Update(1); err != nil {
		t.Fatalf("lenient Update() error: %v", err)
	}
	if lenient.Position() != core.V(53, 50) {
		t.Errorf("lenient Position() = %v, expected coasting to (53, 50)", lenient.Position())
	}

	tuning := DefaultTuning()
	tuning.StrictDirections = true
	strict := NewHomingBullet(core.V(50, 50), core.V(10, 10), vel, core.V(50, 50), tuning)
	if err := strict.Update(1); !errors.Is(err, core.ErrDegenerateDirection) {
		t.Fatalf("strict Update() error = %v, expected ErrDegenerateDirection", err)
	}
	if strict.Position() != core.V(50, 50) || strict.Velocity() != vel {
		t.Errorf("failed Update() mutated state: pos %v vel %v", strict.Position(), strict.Velocity())
	}
}

func TestHomingBulletConcurrentActionAndRead(t *testing.T) {
	h := NewHomingBullet(core.V(0, 0), core.V(10, 10), core.Vec2{}, core.V(1, 1), DefaultTuning())
	player := NewPlayer(core.V(10, 10), 18, 150)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = h.Action(0, player, nil)
		}()
		go func() {
			defer wg.Done()
			_ = h.Target()
		}()
	}
	wg.Wait()

	if h.Target() != core.V(10, 10) {
		t.Errorf("Target() = %v, expected (10, 10)", h.Target())
	}
}

func TestPlayerSteer(t *testing.T) {
	p := NewPlayer(core.V(400, 300), 18, 150)

	p.Steer(core.Vec2{})
	if !p.Velocity().IsZero() {
		t.Errorf("Steer(zero) velocity = %v, expected zero", p.Velocity())
	}

	p.Steer(core.V(1, -1))
	if speed := p.Velocity().Len(); math.Abs(speed-150) > eps {
		t.Errorf("diagonal speed = %v, expected 150", speed)
	}

	p.Steer(core.V(0, 1))
	if p.Velocity() != core.V(0, 150) {
		t.Errorf("Steer(down) velocity = %v, expected (0, 150)", p.Velocity())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	actors := []Actor{
		NewBullet(core.V(1, 1), core.V(5, 5), core.V(10, 0)),
		NewDrunkBullet(core.V(1, 1), core.V(5, 5), core.V(10, 0), DefaultTuning()),
		NewHomingBullet(core.V(1, 1), core.V(5, 5), core.V(10, 0), core.V(100, 100), DefaultTuning()),
		NewPlayer(core.V(1, 1), 18, 150),
	}

	for _, a := range actors {
		t.Run(Kind(a), func(t *testing.T) {
			c, err := Clone(a)
			if err != nil {
				t.Fatalf("Clone() error: %v", err)
			}
			c.SetPosition(core.V(99, 99))
			if a.Position() != core.V(1, 1) {
				t.Errorf("mutating the clone moved the original to %v", a.Position())
			}
			if Kind(c) != Kind(a) {
				t.Errorf("Kind(clone) = %s, expected %s", Kind(c), Kind(a))
			}
		})
	}
}

type foreignActor struct{ Bullet }

func TestCloneUnknownVariant(t *testing.T) {
	if _, err := Clone(&foreignActor{}); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Clone(foreign) error = %v, expected ErrUnknownVariant", err)
	}
}

func TestDrawBatchedAndImmediate(t *testing.T) {
	b := NewBullet(core.V(10, 10), core.V(4, 4), core.Vec2{})
	d := NewDrunkBullet(core.V(20, 20), core.V(4, 4), core.V(1, 0), DefaultTuning())
	surface := &recordingSurface{}

	mesh := core.NewMeshBuilder()
	if err := b.Draw(surface, mesh); err != nil {
		t.Fatal(err)
	}
	if err := d.Draw(surface, mesh); err != nil {
		t.Fatal(err)
	}
	if len(surface.rects) != 0 {
		t.Errorf("batched draw touched the surface %d times", len(surface.rects))
	}
	if mesh.Len() != 2 {
		t.Fatalf("mesh.Len() = %d, expected 2", mesh.Len())
	}
	if mesh.Rects()[1].Color != core.ColorOrange {
		t.Errorf("drunk bullet color = %v, expected ColorOrange", mesh.Rects()[1].Color)
	}

	if err := b.Draw(surface, nil); err != nil {
		t.Fatal(err)
	}
	if len(surface.rects) != 1 || surface.rects[0].Color != core.ColorWhite {
		t.Errorf("immediate draw = %+v, expected one white rect", surface.rects)
	}
}
