package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/lottiedoc/pkg/doc"
	"github.com/matzehuels/lottiedoc/pkg/lottie"
)

func attr(name, value string) doc.Attr { return doc.Attr{Name: name, Value: value} }

func floatAttr(name string, f float64) doc.Attr { return attr(name, lottie.FormatFloat(f)) }

func intAttr(name string, i int) doc.Attr { return attr(name, strconv.Itoa(i)) }

func boolAttr(name string, b bool) doc.Attr { return attr(name, strconv.FormatBool(b)) }

func stringerAttr(name string, v fmt.Stringer) doc.Attr { return attr(name, v.String()) }

// optionalAttr returns the attribute, or nil when value is blank.
func optionalAttr(name, value string) doc.Item {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return attr(name, value)
}

// formatValue renders a keyframe or initial value.
func formatValue(v any) string {
	switch v := v.(type) {
	case float64:
		return lottie.FormatFloat(v)
	case fmt.Stringer:
		return v.String()
	}
	fault("value", v)
	return ""
}

// fromAnimatable emits an attribute for a constant property and an element
// holding the keyframe list for an animated one.
func fromAnimatable[T any](name string, a lottie.Animatable[T]) doc.Item {
	if !a.IsAnimated() {
		return attr(name, formatValue(a.InitialValue))
	}
	parts := make([]string, len(a.KeyFrames))
	for i, kf := range a.KeyFrames {
		parts[i] = fromKeyFrame(kf)
	}
	return doc.NewElement(name, doc.Text(strings.Join(parts, ", ")))
}

func fromKeyFrame[T any](kf lottie.KeyFrame[T]) string {
	timing := "@" + lottie.FormatFloat(kf.Frame) + "(" + kf.Easing.Type.String() + ")"
	if kf.HasSpatialBezier() {
		return "SpatialBezier:" + formatValue(kf.Value) + "," +
			kf.SpatialControlPoint1.String() + "," + kf.SpatialControlPoint2.String() + timing
	}
	return formatValue(kf.Value) + timing
}

// fromVector3 applies the animatable rule to either vector representation.
func fromVector3(name string, v lottie.AnimatableVector3) doc.Item {
	switch v := v.(type) {
	case *lottie.AnimatableVector3Value:
		if v != nil {
			return fromAnimatable(name, v.Animatable)
		}
	case *lottie.AnimatableXYZ:
		if v != nil {
			return doc.NewElement(name,
				fromAnimatable("X", v.X),
				fromAnimatable("Y", v.Y),
				fromAnimatable("Z", v.Z),
			)
		}
	}
	fault("vector property", v)
	return nil
}
