package payroll

type ContributionKind string

const (
	ContributionSocialSecurity ContributionKind = "social_security"
	ContributionPension        ContributionKind = "pension"
	ContributionUnemployment   ContributionKind = "unemployment"
)

// ContributionKinds is the summation order for both sides.
var ContributionKinds = []ContributionKind{
	ContributionSocialSecurity,
	ContributionPension,
	ContributionUnemployment,
}

var MaritalStatuses = []MaritalStatus{
	MaritalSingle,
	MaritalMarried,
	MaritalDivorced,
	MaritalWidowed,
}

var Categories = []Category{
	CategoryEmployee,
	CategoryExecutive,
}

const Currency = "DZD"
