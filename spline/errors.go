package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitialized is returned when a spline has fewer than two points
	ErrUninitialized = errors.New("spline: fewer than two points")

	// ErrIndexOutOfRange is returned by authoring edits given an invalid point index
	ErrIndexOutOfRange = errors.New("spline: point index out of range")

	// ErrTooFewPoints is returned when removing a point would leave fewer than two
	ErrTooFewPoints = errors.New("spline: cannot remove, spline needs at least two points")

	// ErrNilPoint is returned when an authoring edit is given a nil point
	ErrNilPoint = errors.New("spline: nil point")

	// ErrPointOwned is returned when adding a point that already belongs to a spline
	ErrPointOwned = errors.New("spline: point already belongs to a spline")

	// ErrNoIntersection is returned when a height-based descent never reaches the spline
	ErrNoIntersection = errors.New("spline: no intersection found between positions")

	// ErrDuplicateName is returned when registering a spline under a taken name
	ErrDuplicateName = errors.New("spline: duplicate spline name")

	// ErrNilSpline is returned when registering or linking a nil spline
	ErrNilSpline = errors.New("spline: nil spline")
)

// LinkReason classifies a rejected link insertion
type LinkReason uint8

const (
	LinkNil LinkReason = iota
	LinkSelf
	LinkSameSpline
	LinkInChain
)

var linkReasonNames = [...]string{
	LinkNil:        "nil point",
	LinkSelf:       "point linked to itself",
	LinkSameSpline: "points on the same spline",
	LinkInChain:    "points already in the same link chain",
}

func (r LinkReason) String() string {
	if int(r) < len(linkReasonNames) {
		return linkReasonNames[r]
	}
	return "unknown"
}

// LinkError reports why a link was refused; the link table is left unchanged
type LinkError struct {
	Reason LinkReason
	From   *Point
	To     *Point
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("spline: link %s -> %s rejected: %s", e.From, e.To, e.Reason)
}
