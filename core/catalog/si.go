// Package catalog - SI dimension catalog
// Defines the seven SI base dimensions and the common named derived
// dimensions composed from them.
package catalog

import (
	"dimkit/core/dimension"
	"dimkit/core/rational"
)

// SI holds handles to the SI dimensions after registration.
type SI struct {
	// Base dimensions
	Length      *dimension.BaseDimension
	Mass        *dimension.BaseDimension
	Time        *dimension.BaseDimension
	Current     *dimension.BaseDimension
	Temperature *dimension.BaseDimension
	Amount      *dimension.BaseDimension
	Luminosity  *dimension.BaseDimension

	// Named derived dimensions
	Area         *dimension.DerivedDimension
	Volume       *dimension.DerivedDimension
	Frequency    *dimension.DerivedDimension
	Velocity     *dimension.DerivedDimension
	Acceleration *dimension.DerivedDimension
	Force        *dimension.DerivedDimension
	Pressure     *dimension.DerivedDimension
	Energy       *dimension.DerivedDimension
	Power        *dimension.DerivedDimension
	Charge       *dimension.DerivedDimension
	Voltage      *dimension.DerivedDimension
}

// RegisterSI populates a registry with the SI dimensions. Registration is
// idempotent against a registry already carrying consistent definitions.
func RegisterSI(r *dimension.Registry) (*SI, error) {
	si := &SI{}
	var err error

	bases := []struct {
		dst    **dimension.BaseDimension
		name   string
		symbol string
	}{
		{&si.Length, "Length", "L"},
		{&si.Mass, "Mass", "M"},
		{&si.Time, "Time", "T"},
		{&si.Current, "Current", "I"},
		{&si.Temperature, "Temperature", "Θ"},
		{&si.Amount, "Amount", "N"},
		{&si.Luminosity, "Luminosity", "J"},
	}
	for _, b := range bases {
		if *b.dst, err = r.DefineBase(b.name, b.symbol); err != nil {
			return nil, err
		}
	}

	length, err := r.FromBase(si.Length)
	if err != nil {
		return nil, err
	}
	mass, err := r.FromBase(si.Mass)
	if err != nil {
		return nil, err
	}
	time, err := r.FromBase(si.Time)
	if err != nil {
		return nil, err
	}
	current, err := r.FromBase(si.Current)
	if err != nil {
		return nil, err
	}

	two, err := rational.FromInt(2)
	if err != nil {
		return nil, err
	}
	three, err := rational.FromInt(3)
	if err != nil {
		return nil, err
	}

	area, err := r.Power(length, two)
	if err != nil {
		return nil, err
	}
	volume, err := r.Power(length, three)
	if err != nil {
		return nil, err
	}
	frequency, err := r.Invert(time)
	if err != nil {
		return nil, err
	}
	velocity, err := r.Divide(length, time)
	if err != nil {
		return nil, err
	}
	acceleration, err := r.Divide(velocity, time)
	if err != nil {
		return nil, err
	}
	force, err := r.Multiply(mass, acceleration)
	if err != nil {
		return nil, err
	}
	pressure, err := r.Divide(force, area)
	if err != nil {
		return nil, err
	}
	energy, err := r.Multiply(force, length)
	if err != nil {
		return nil, err
	}
	power, err := r.Divide(energy, time)
	if err != nil {
		return nil, err
	}
	charge, err := r.Multiply(current, time)
	if err != nil {
		return nil, err
	}
	voltage, err := r.Divide(power, current)
	if err != nil {
		return nil, err
	}

	derived := []struct {
		dst     **dimension.DerivedDimension
		name    string
		symbol  string
		formula *dimension.DerivedDimension
	}{
		{&si.Area, "Area", "A", area},
		{&si.Volume, "Volume", "V", volume},
		{&si.Frequency, "Frequency", "f", frequency},
		{&si.Velocity, "Velocity", "v", velocity},
		{&si.Acceleration, "Acceleration", "a", acceleration},
		{&si.Force, "Force", "F", force},
		{&si.Pressure, "Pressure", "p", pressure},
		{&si.Energy, "Energy", "E", energy},
		{&si.Power, "Power", "P", power},
		{&si.Charge, "Charge", "Q", charge},
		{&si.Voltage, "Voltage", "U", voltage},
	}
	for _, d := range derived {
		if *d.dst, err = r.DefineDerived(d.name, d.symbol, d.formula); err != nil {
			return nil, err
		}
	}

	return si, nil
}
