package models

// Person is the household member a transaction is attributed to.
type Person string

const (
	PersonJeff    Person = "Jeff"
	PersonVanessa Person = "Vanessa"
	PersonJoint   Person = "Joint"
)

// People lists every Person in display order.
var People = []Person{PersonJeff, PersonVanessa, PersonJoint}

// Valid reports whether p is a known household member.
func (p Person) Valid() bool {
	switch p {
	case PersonJeff, PersonVanessa, PersonJoint:
		return true
	}
	return false
}

// FundingAccount identifies the account money moved through.
type FundingAccount string

const (
	FundingChecking   FundingAccount = "Checking"
	FundingSavings    FundingAccount = "Savings"
	FundingCreditCard FundingAccount = "Credit Card"
	FundingCash       FundingAccount = "Cash"
	FundingVenmo      FundingAccount = "Venmo"
	FundingHSA        FundingAccount = "HSA"
)

// FundingAccounts lists every FundingAccount.
var FundingAccounts = []FundingAccount{
	FundingChecking, FundingSavings, FundingCreditCard, FundingCash, FundingVenmo, FundingHSA,
}

// Valid reports whether a is a known funding account.
func (a FundingAccount) Valid() bool {
	for _, known := range FundingAccounts {
		if a == known {
			return true
		}
	}
	return false
}

// TransactionKind is either income or expense.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Valid reports whether k is income or expense.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// TransactionStatus tracks whether a transaction has posted.
type TransactionStatus string

const (
	StatusCleared TransactionStatus = "cleared"
	StatusPending TransactionStatus = "pending"
)

// Valid reports whether s is cleared or pending.
func (s TransactionStatus) Valid() bool {
	return s == StatusCleared || s == StatusPending
}

// IncomeSource tags where income came from.
type IncomeSource string

const (
	SourceSalary     IncomeSource = "Salary"
	SourceInvestment IncomeSource = "Investment"
	SourceTransfer   IncomeSource = "Transfer"
	SourceOther      IncomeSource = "Other"
)

// IncomeSources lists every IncomeSource in report order.
var IncomeSources = []IncomeSource{SourceSalary, SourceInvestment, SourceTransfer, SourceOther}

// Valid reports whether s is a known income source.
func (s IncomeSource) Valid() bool {
	switch s {
	case SourceSalary, SourceInvestment, SourceTransfer, SourceOther:
		return true
	}
	return false
}

// LiquidityTier classifies how quickly an asset converts to cash.
type LiquidityTier string

const (
	TierLiquid     LiquidityTier = "Liquid"
	TierSemiLiquid LiquidityTier = "SemiLiquid"
	TierNonLiquid  LiquidityTier = "NonLiquid"
)

// LiquidityTiers lists every tier from most to least liquid.
var LiquidityTiers = []LiquidityTier{TierLiquid, TierSemiLiquid, TierNonLiquid}

// Valid reports whether t is a known tier.
func (t LiquidityTier) Valid() bool {
	switch t {
	case TierLiquid, TierSemiLiquid, TierNonLiquid:
		return true
	}
	return false
}

// AssetOwner is the owner of an asset account. Unlike Person it has no
// "only" qualifier: an account belongs to one member or to both.
type AssetOwner string

const (
	OwnerJeff    AssetOwner = "Jeff"
	OwnerVanessa AssetOwner = "Vanessa"
	OwnerJoint   AssetOwner = "Joint"
)

// AssetOwners lists every owner.
var AssetOwners = []AssetOwner{OwnerJeff, OwnerVanessa, OwnerJoint}

// Valid reports whether o is a known owner.
func (o AssetOwner) Valid() bool {
	switch o {
	case OwnerJeff, OwnerVanessa, OwnerJoint:
		return true
	}
	return false
}

// AssetKind describes what an asset account holds.
type AssetKind string

const (
	AssetKindCash          AssetKind = "cash"
	AssetKindSavings       AssetKind = "savings"
	AssetKindRetirement    AssetKind = "retirement"
	AssetKindInvestment    AssetKind = "investment"
	AssetKindHealthSavings AssetKind = "health_savings"
	AssetKindRealEstate    AssetKind = "real_estate"
	AssetKindVehicle       AssetKind = "vehicle"
	AssetKindLiability     AssetKind = "liability"
)

// Valid reports whether k is a known asset kind.
func (k AssetKind) Valid() bool {
	switch k {
	case AssetKindCash, AssetKindSavings, AssetKindRetirement, AssetKindInvestment,
		AssetKindHealthSavings, AssetKindRealEstate, AssetKindVehicle, AssetKindLiability:
		return true
	}
	return false
}
