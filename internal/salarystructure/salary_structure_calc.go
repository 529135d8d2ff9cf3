package salarystructure

import (
	"fmt"

	"github.com/madhavny/mavi-hrms-sub002/internal/salarycomponent"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolvedComponent is a structure line with its amount already computed
// against a basic salary.
type ResolvedComponent struct {
	SalaryComponentID uuid.UUID
	ComponentName     string
	ComponentType     string
	CalculationType   string
	Amount            *decimal.Decimal
	Percentage        *decimal.Decimal
	CalculatedAmount  decimal.Decimal
}

// Resolve computes a line's amount from its catalog definition.
// FIXED uses the given amount (falling back to the catalog default);
// PERCENTAGE applies the rate to the basic salary. Results are rounded
// to 2 dp.
func Resolve(
	def salarycomponent.SalaryComponent,
	basicSalary decimal.Decimal,
	amount, percentage *decimal.Decimal,
) (ResolvedComponent, error) {
	resolved := ResolvedComponent{
		SalaryComponentID: def.ID,
		ComponentName:     def.Name,
		ComponentType:     def.ComponentType,
		CalculationType:   def.CalculationType,
	}

	switch def.CalculationType {
	case salarycomponent.CalculationFixed:
		value := def.DefaultValue
		if amount != nil {
			value = *amount
		}
		value = value.Round(2)
		resolved.Amount = &value
		resolved.CalculatedAmount = value
	case salarycomponent.CalculationPercentage:
		rate := def.DefaultValue
		if percentage != nil {
			rate = *percentage
		}
		resolved.Percentage = &rate
		resolved.CalculatedAmount = basicSalary.Mul(rate).Div(hundred).Round(2)
	default:
		return ResolvedComponent{}, fmt.Errorf("unknown calculation type %q", def.CalculationType)
	}

	return resolved, nil
}

// ComputeTotals accumulates structure lines into gross, deductions and
// net. This is the single place where component types branch; an
// unrecognised type is an error, not a silent skip.
func ComputeTotals(
	basicSalary decimal.Decimal,
	components []ResolvedComponent,
) (gross, deductions, net decimal.Decimal, err error) {
	gross = basicSalary
	deductions = decimal.Zero

	for _, comp := range components {
		switch comp.ComponentType {
		case salarycomponent.TypeEarning, salarycomponent.TypeReimbursement:
			gross = gross.Add(comp.CalculatedAmount)
		case salarycomponent.TypeDeduction:
			deductions = deductions.Add(comp.CalculatedAmount)
		default:
			return decimal.Zero, decimal.Zero, decimal.Zero,
				fmt.Errorf("unknown component type %q", comp.ComponentType)
		}
	}

	net = gross.Sub(deductions)
	return gross, deductions, net, nil
}
