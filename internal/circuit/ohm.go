package circuit

import (
	"encoding/json"
	"math"
)

// OhmInputs holds the known electrical quantities for Ohm's law resolution.
// A nil field is absent (unknown), never zero; callers parsing user text must
// map empty or unparseable input to nil.
type OhmInputs struct {
	Voltage    *float64 `json:"voltage"`
	Current    *float64 `json:"current"`
	Resistance *float64 `json:"resistance"`
	Power      *float64 `json:"power"`
}

// Field is one resolved quantity. Defined is false when the quantity could
// not be derived because its derivation divides by zero, directly or through
// another undefined quantity.
type Field struct {
	Value   float64
	Defined bool
}

// MarshalJSON renders a defined field as its bare number and an undefined
// field as null, matching the nullable inputs the API accepts.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// OhmResult carries the maximally resolved set of quantities. Quantities the
// caller supplied come back defined and unchanged.
type OhmResult struct {
	Voltage    Field `json:"voltage"`
	Current    Field `json:"current"`
	Resistance Field `json:"resistance"`
	Power      Field `json:"power"`
}

// ResolveOhm derives the unknown quantities among voltage, current,
// resistance and power from the supplied ones using V = I·R and P = V·I.
//
// At least two quantities must be known or ErrInsufficientInputs is returned.
// When more than two are known, the first matching pair in the fixed order
// (V,I), (V,R), (V,P), (I,R), (I,P), (R,P) wins and the extra inputs are
// ignored; over-determined inputs are not checked for consistency. A supplied
// NaN or infinity fails with DomainError.
func ResolveOhm(in OhmInputs) (OhmResult, error) {
	known := 0
	for _, f := range []struct {
		name string
		val  *float64
	}{
		{"voltage", in.Voltage},
		{"current", in.Current},
		{"resistance", in.Resistance},
		{"power", in.Power},
	} {
		if f.val == nil {
			continue
		}
		if math.IsNaN(*f.val) || math.IsInf(*f.val, 0) {
			return OhmResult{}, &DomainError{Field: f.name, Value: *f.val, Reason: "must be finite"}
		}
		known++
	}
	if known < 2 {
		return OhmResult{}, ErrInsufficientInputs
	}

	var res OhmResult
	switch {
	case in.Voltage != nil && in.Current != nil:
		v, i := *in.Voltage, *in.Current
		res.Voltage = defined(v)
		res.Current = defined(i)
		res.Resistance = quotient(v, i)
		res.Power = defined(v * i)

	case in.Voltage != nil && in.Resistance != nil:
		v, r := *in.Voltage, *in.Resistance
		res.Voltage = defined(v)
		res.Resistance = defined(r)
		res.Current = quotient(v, r)
		res.Power = mulFields(res.Voltage, res.Current)

	case in.Voltage != nil && in.Power != nil:
		v, p := *in.Voltage, *in.Power
		res.Voltage = defined(v)
		res.Power = defined(p)
		res.Current = quotient(p, v)
		res.Resistance = divFields(res.Voltage, res.Current)

	case in.Current != nil && in.Resistance != nil:
		i, r := *in.Current, *in.Resistance
		res.Current = defined(i)
		res.Resistance = defined(r)
		res.Voltage = defined(i * r)
		res.Power = defined(i * i * r)

	case in.Current != nil && in.Power != nil:
		i, p := *in.Current, *in.Power
		res.Current = defined(i)
		res.Power = defined(p)
		res.Voltage = quotient(p, i)
		res.Resistance = divFields(res.Voltage, res.Current)

	default: // resistance and power
		r, p := *in.Resistance, *in.Power
		res.Resistance = defined(r)
		res.Power = defined(p)
		// I = √(P/R) is undefined for R = 0 and for P/R < 0; V = I·R
		// follows the current.
		if r != 0 && p/r >= 0 {
			i := math.Sqrt(p / r)
			res.Current = defined(i)
			res.Voltage = defined(i * r)
		}
	}
	return res, nil
}

func defined(v float64) Field {
	return Field{Value: v, Defined: true}
}

// quotient derives num/den, undefined when den is zero.
func quotient(num, den float64) Field {
	if den == 0 {
		return Field{}
	}
	return defined(num / den)
}

func divFields(num, den Field) Field {
	if !num.Defined || !den.Defined {
		return Field{}
	}
	return quotient(num.Value, den.Value)
}

func mulFields(a, b Field) Field {
	if !a.Defined || !b.Defined {
		return Field{}
	}
	return defined(a.Value * b.Value)
}
