package parameter

// Zombie wandering
const (
	// ZombieTurnDamping decays the angular velocity each tick
	ZombieTurnDamping = 0.99

	// ZombieTurnJitter scales the random angular acceleration
	ZombieTurnJitter = 0.01

	// ZombieJumpChance is the per-tick jump probability while grounded
	ZombieJumpChance = 0.01

	// ZombieResetHeight resets a zombie that rises above this y
	ZombieResetHeight = 100.0

	// ZombieTimeOffsetRange randomizes animation phase
	ZombieTimeOffsetRange = 1239813.0

	// ZombieModelScale converts model units to world units (1.75 blocks over 30 units)
	ZombieModelScale = 0.058333334
)
