package sim

// Fixed-rate simulation. One Advance call is one tick.
const TicksPerSecond = 60

// Viewport extent in pixels. The camera clamps to the room inside it.
const (
	ViewWidth  = 640
	ViewHeight = 360
)

// Movement and physics tuning. Velocities are pixels per tick.
const (
	Gravity      = 0.38
	MaxFallSpeed = 9.0

	PlayerMaxSpeed   = 2.6
	PlayerAccel      = 0.35
	PlayerDecel      = 0.45
	PlayerJumpSpeed  = -7.4
	JumpCutFactor    = 0.45 // applied to upward speed when jump is released early
	CoyoteTicks      = 6
	JumpBufferTicks  = 7
	ForceWalkSpeed   = 3.0
	FallKillMargin   = 64.0 // pixels below the room before a fall is fatal
	PlayerIframes    = 60
	HazardCheckInset = 2.0 // shrink applied to the hurtbox for hazard overlap
)

// AI tuning.
const (
	AggroRadius    = 170.0 // horizontal distance at which grounded enemies chase
	EngageRadius   = 340.0 // max distance at which ranged enemies fire
	OverlordSalvo  = 12    // projectiles per radial ring
	OverlordSalvos = 10    // rings fired before the boss sleeps
	OverlordSleep  = 360   // ticks spent vulnerable between attack cycles
)

// Progression pacing, in ticks.
const (
	ExitDelay         = 60  // room-to-room transition
	VictoryExitDelay  = 150 // terminal exit on a non-hardest tier
	BossVictoryDelay  = 300 // after the final boss dies
	LockedExitChance  = 0.03
	StatsInterval     = 10 // ticks between stats snapshots
	CrumblePerTick    = 6  // max wall tiles cleared per intro tick
	CrumbleChance     = 0.18
	CollapsibleRows   = 8 // pre-filled arena rows cleared by the intro
	BossPocketCols    = 7 // columns at the left kept clear for the player
	DamageFlashEffect = 12
)
