package models

import "math"

// Gender is the enumerated gender of an employee record
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Valid reports whether g is one of the accepted values
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// AnnualSalaryMonths is the multiplier from a monthly salary to anual_salary
const AnnualSalaryMonths = 12

// Column bounds. Every key is a SERIAL (int4) and salary is NUMERIC(12,2).
const (
	MaxID     = math.MaxInt32
	MaxSalary = 9999999999.99
)
