package parameter

// Spline sampling
const (
	// ArcLengthAccuracy is the default sample count for arc length between two t values
	ArcLengthAccuracy = 50

	// NearestPointAccuracy is the default sample count for brute-force nearest point searches
	NearestPointAccuracy = 100

	// NearestPointMaxSteps caps NearestPointBetween sampling
	NearestPointMaxSteps = 1000

	// MinStepSize and MaxStepSize bound the t step derived from an accuracy value
	MinStepSize = 1e-5
	MaxStepSize = 0.2

	// SampledMoveAccuracy is the default iteration count for multi-step arc advance
	SampledMoveAccuracy = 3

	// IntersectionSteps is the fixed number of increments used by the height intersection search
	IntersectionSteps = 100

	// XZRefineWithin is the convergence tolerance of the XZ nearest-point refinement
	XZRefineWithin = 0.001

	// XZRefineMaxOffset skips refinement when the coarse hit is further than this on X or Z
	XZRefineMaxOffset = 1.0

	// XZRefineInitialStep is the first refinement t step
	XZRefineInitialStep = 0.01

	// XZRefineMaxPasses bounds refinement passes; step shrinks x0.1 per pass
	XZRefineMaxPasses = 10

	// AlignTolerance is the XZ distance under which a spline counts as directly below a body
	AlignTolerance = 0.01

	// TangentEpsilon guards arc advance against zero-length tangents
	TangentEpsilon = 1e-9
)

// Authoring defaults
var (
	// DefaultPrecedingHandle and DefaultFollowingHandle are local-frame handle offsets of a new point
	DefaultPrecedingHandle = [3]float64{-1, 0, 0}
	DefaultFollowingHandle = [3]float64{1, 0, 0}
)
