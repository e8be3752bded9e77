package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func single(gross float64) Employee {
	return Employee{GrossSalary: gross, MaritalStatus: MaritalSingle, Category: CategoryEmployee}
}

func TestComputeZeroGross(t *testing.T) {
	res := Compute(single(0))
	if res != (Result{}) {
		t.Fatalf("expected zero result, got %+v", res)
	}
}

func TestComputeSingleNoChildren(t *testing.T) {
	res := Compute(single(50000))

	require.InDelta(t, 4500, res.EmployeeContributions.SocialSecurity, delta)
	require.InDelta(t, 4625, res.EmployeeContributions.Pension, delta)
	require.InDelta(t, 250, res.EmployeeContributions.Unemployment, delta)
	require.InDelta(t, 9375, res.EmployeeContributions.Total, delta)
	require.InDelta(t, 40625, res.TaxableIncome, delta)
	require.InDelta(t, 40625, res.TaxBase, delta)
	require.InDelta(t, 2125, res.IncomeTax, delta)
	require.InDelta(t, 38500, res.NetPay, delta)
	require.InDelta(t, 6250, res.EmployerContributions.SocialSecurity, delta)
	require.InDelta(t, 5125, res.EmployerContributions.Pension, delta)
	require.InDelta(t, 500, res.EmployerContributions.Unemployment, delta)
	require.InDelta(t, 11875, res.EmployerContributions.Total, delta)
	require.InDelta(t, 61875, res.TotalEmployerCost, delta)
}

func TestComputeMarriedWithChildren(t *testing.T) {
	emp := Employee{GrossSalary: 50000, MaritalStatus: MaritalMarried, DependentChildren: 2, Category: CategoryEmployee}
	res := Compute(emp)
	base := Compute(single(50000))

	require.InDelta(t, 38625, res.TaxBase, delta)
	require.InDelta(t, 1725, res.IncomeTax, delta)
	require.InDelta(t, 38900, res.NetPay, delta)
	assert.Equal(t, base.EmployeeContributions, res.EmployeeContributions)
	assert.Equal(t, base.EmployerContributions, res.EmployerContributions)
	assert.Equal(t, base.TaxableIncome, res.TaxableIncome)
	assert.Equal(t, base.TotalEmployerCost, res.TotalEmployerCost)
}

func TestComputeSpouseAbatementOnlyWhenMarried(t *testing.T) {
	for _, status := range []MaritalStatus{MaritalSingle, MaritalDivorced, MaritalWidowed} {
		res := Compute(Employee{GrossSalary: 50000, MaritalStatus: status, DependentChildren: 1})
		require.InDelta(t, 40125, res.TaxBase, delta, "status %s", status)
	}
}

func TestComputeTopBracket(t *testing.T) {
	res := Compute(single(500000))

	require.InDelta(t, 93750, res.EmployeeContributions.Total, delta)
	require.InDelta(t, 406250, res.TaxableIncome, delta)
	// 18000 + 72000 + (406250-360000)*0.35
	require.InDelta(t, 106187.5, res.IncomeTax, delta)
	require.InDelta(t, 300062.5, res.NetPay, delta)
	require.InDelta(t, 618750, res.TotalEmployerCost, delta)
}

func TestComputeNegativeBaseYieldsNoTax(t *testing.T) {
	emp := Employee{GrossSalary: 1000, MaritalStatus: MaritalMarried, DependentChildren: 4}
	res := Compute(emp)
	if res.TaxBase >= 0 {
		t.Fatalf("expected negative tax base, got %v", res.TaxBase)
	}
	if res.IncomeTax != 0 {
		t.Fatalf("expected no tax, got %v", res.IncomeTax)
	}
	require.InDelta(t, res.TaxableIncome, res.NetPay, delta)
}

func TestComputeContributionShares(t *testing.T) {
	for _, gross := range []float64{0, 1, 1234.56, 50000, 99999.99, 1e6} {
		res := Compute(single(gross))
		require.InDelta(t, 0.1875*gross, res.EmployeeContributions.Total, delta, "gross %v", gross)
		require.InDelta(t, 0.2375*gross, res.EmployerContributions.Total, delta, "gross %v", gross)
	}
}

func TestComputeCategoryDoesNotChangeResult(t *testing.T) {
	emp := single(250000)
	exec := emp
	exec.Category = CategoryExecutive
	if Compute(emp) != Compute(exec) {
		t.Fatal("category must not alter the computation")
	}
}

func TestComputeMonotonic(t *testing.T) {
	prev := Compute(single(0))
	for gross := 250.0; gross <= 700000; gross += 250 {
		cur := Compute(single(gross))
		if cur.NetPay < prev.NetPay {
			t.Fatalf("net pay decreased at gross %v: %v < %v", gross, cur.NetPay, prev.NetPay)
		}
		if cur.TotalEmployerCost < prev.TotalEmployerCost {
			t.Fatalf("employer cost decreased at gross %v", gross)
		}
		prev = cur
	}
}

func TestComputeIdempotent(t *testing.T) {
	emp := Employee{GrossSalary: 187654.321, MaritalStatus: MaritalMarried, DependentChildren: 3}
	first := Compute(emp)
	second := Compute(emp)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestEngineUsesGivenSchedule(t *testing.T) {
	s := DefaultSchedule()
	s.ChildAbatement = 0
	engine := NewEngine(s)

	res := engine.Compute(Employee{GrossSalary: 50000, MaritalStatus: MaritalSingle, DependentChildren: 5})
	require.InDelta(t, 40625, res.TaxBase, delta)
	require.InDelta(t, 2125, res.IncomeTax, delta)
}
