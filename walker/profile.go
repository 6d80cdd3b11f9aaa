package walker

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/rail-walker/parameter"
)

// ErrInvalidProfile is wrapped by every Profile validation failure
var ErrInvalidProfile = errors.New("walker: invalid profile")

// Profile holds walker tuning; keys absent from a decoded file keep their defaults
// Speeds are units per second, times are seconds, angles are degrees
type Profile struct {
	BaseSpeed           float64 `toml:"base_speed"`
	RunSpeed            float64 `toml:"run_speed"`
	RunWindupTime       float64 `toml:"run_windup_time"`
	RunAccelerationTime float64 `toml:"run_acceleration_time"`

	AirFrictionModifier float64 `toml:"air_friction_modifier"`
	AirMoveModifier     float64 `toml:"air_move_modifier"`
	AirBoostModifier    float64 `toml:"air_boost_modifier"`

	StandardJumpHeight float64 `toml:"standard_jump_height"`
	MaxJumpHeight      float64 `toml:"max_jump_height"`
	Gravity            float64 `toml:"gravity"`
	TerminalVelocity   float64 `toml:"terminal_velocity"`

	MinRollAngle     float64 `toml:"min_roll_angle"`
	MinRunnableAngle float64 `toml:"min_runnable_angle"`
	MaxRunnableAngle float64 `toml:"max_runnable_angle"`

	WallStickDuration     float64 `toml:"wall_stick_duration"`
	WallSlideAcceleration float64 `toml:"wall_slide_acceleration"`
	SlideAcceleration     float64 `toml:"slide_acceleration"`
}

// DefaultProfile returns the stock tuning
func DefaultProfile() Profile {
	return Profile{
		BaseSpeed:             parameter.WalkerBaseSpeed,
		RunSpeed:              parameter.WalkerRunSpeed,
		RunWindupTime:         parameter.WalkerRunWindupTime,
		RunAccelerationTime:   parameter.WalkerRunAccelerationTime,
		AirFrictionModifier:   parameter.WalkerAirFrictionModifier,
		AirMoveModifier:       parameter.WalkerAirMoveModifier,
		AirBoostModifier:      parameter.WalkerAirBoostModifier,
		StandardJumpHeight:    parameter.WalkerStandardJumpHeight,
		MaxJumpHeight:         parameter.WalkerMaxJumpHeight,
		Gravity:               parameter.WalkerGravity,
		TerminalVelocity:      parameter.WalkerTerminalVelocity,
		MinRollAngle:          parameter.WalkerMinRollAngle,
		MinRunnableAngle:      parameter.WalkerMinRunnableAngle,
		MaxRunnableAngle:      parameter.WalkerMaxRunnableAngle,
		WallStickDuration:     parameter.WalkerWallStickDuration,
		WallSlideAcceleration: parameter.WalkerWallSlideAcceleration,
		SlideAcceleration:     parameter.WalkerSlideAcceleration,
	}
}

// LoadProfile reads a TOML profile over the defaults and validates it
func LoadProfile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultProfile(), fmt.Errorf("walker: load profile %s: %w", path, err)
	}
	defer f.Close()

	p, err := DecodeProfile(f)
	if err != nil {
		return p, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// DecodeProfile reads a TOML profile from r over the defaults and validates it
func DecodeProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return p, fmt.Errorf("walker: decode profile: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		Logger().Warn("unknown profile keys ignored", "keys", fmt.Sprint(undec))
	}
	return p, p.Validate()
}

// SaveProfile writes p as TOML
func SaveProfile(path string, p Profile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("walker: save profile: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("walker: save profile: %w", err)
	}
	return nil
}

// Validate rejects tuning the state machine cannot honour
func (p Profile) Validate() error {
	switch {
	case p.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidProfile)
	case p.RunSpeed < p.BaseSpeed:
		return fmt.Errorf("%w: run_speed %.2f below base_speed %.2f", ErrInvalidProfile, p.RunSpeed, p.BaseSpeed)
	case p.RunWindupTime < 0 || p.RunAccelerationTime < 0:
		return fmt.Errorf("%w: run timings must not be negative", ErrInvalidProfile)
	case p.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidProfile)
	case p.TerminalVelocity <= 0:
		return fmt.Errorf("%w: terminal_velocity must be positive", ErrInvalidProfile)
	case p.MaxJumpHeight < p.StandardJumpHeight:
		return fmt.Errorf("%w: max_jump_height below standard_jump_height", ErrInvalidProfile)
	case p.MinRollAngle > p.MinRunnableAngle || p.MinRunnableAngle > p.MaxRunnableAngle:
		return fmt.Errorf("%w: angles must satisfy roll <= min runnable <= max runnable", ErrInvalidProfile)
	case p.WallStickDuration < 0:
		return fmt.Errorf("%w: wall_stick_duration must not be negative", ErrInvalidProfile)
	}
	return nil
}

// AirFriction is the horizontal speed lost per second while airborne
func (p Profile) AirFriction() float64 { return p.BaseSpeed * p.AirFrictionModifier }

// AirMoveForce is the horizontal acceleration from input while airborne; it overcomes friction
func (p Profile) AirMoveForce() float64 { return p.BaseSpeed*p.AirMoveModifier + p.AirFriction() }

// AirBoost is the instant speed added when starting to move in the current air direction
func (p Profile) AirBoost() float64 { return p.BaseSpeed * p.AirBoostModifier }
