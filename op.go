package artpaint

import (
	"fmt"
	"strings"
)

// Op names one pixel operation.
type Op uint8

// Operations dispatched by Apply.
const (
	OpFlipHorizontal Op = iota
	OpFlipVertical
	OpRotate90CW
	OpRotate90CCW
	OpRotate
	OpCrop
	OpScale
	OpScaleCanvas
	OpTranslate
	OpFloodFill
	OpBoundedFill
	OpGradientFill
	OpFilter
)

var opNames = [...]string{
	OpFlipHorizontal: "flip-horizontal",
	OpFlipVertical:   "flip-vertical",
	OpRotate90CW:     "rotate-cw",
	OpRotate90CCW:    "rotate-ccw",
	OpRotate:         "rotate",
	OpCrop:           "crop",
	OpScale:          "scale",
	OpScaleCanvas:    "scale-canvas",
	OpTranslate:      "translate",
	OpFloodFill:      "flood-fill",
	OpBoundedFill:    "bounded-fill",
	OpGradientFill:   "gradient",
	OpFilter:         "filter",
}

// String returns the name accepted by ParseOp.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", op)
}

// ParseOp resolves an operation name, ignoring case.
func ParseOp(s string) (Op, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("artpaint: %w %q", ErrUnknownOp, s)
}

// InPlace reports whether op modifies its input bitmap instead of
// returning a new one.
func (op Op) InPlace() bool {
	switch op {
	case OpFlipHorizontal, OpFlipVertical, OpFloodFill, OpBoundedFill, OpGradientFill, OpFilter:
		return true
	}
	return false
}
