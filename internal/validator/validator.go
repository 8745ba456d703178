// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetbook/internal/models"
	"budgetbook/internal/period"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month", validateMonth)
		_ = v.RegisterValidation("person", validatePerson)
		_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
		_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
		_ = v.RegisterValidation("income_source", validateIncomeSource)
		_ = v.RegisterValidation("funding_account", validateFundingAccount)
		_ = v.RegisterValidation("liquidity_tier", validateLiquidityTier)
		_ = v.RegisterValidation("asset_owner", validateAssetOwner)
		_ = v.RegisterValidation("asset_kind", validateAssetKind)
	}
}

func validateMonth(fl validator.FieldLevel) bool {
	_, err := period.Parse(fl.Field().String())
	return err == nil
}

func validatePerson(fl validator.FieldLevel) bool {
	return models.Person(fl.Field().String()).Valid()
}

func validateTransactionKind(fl validator.FieldLevel) bool {
	return models.TransactionKind(fl.Field().String()).Valid()
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	return models.TransactionStatus(fl.Field().String()).Valid()
}

func validateIncomeSource(fl validator.FieldLevel) bool {
	return models.IncomeSource(fl.Field().String()).Valid()
}

func validateFundingAccount(fl validator.FieldLevel) bool {
	return models.FundingAccount(fl.Field().String()).Valid()
}

func validateLiquidityTier(fl validator.FieldLevel) bool {
	return models.LiquidityTier(fl.Field().String()).Valid()
}

func validateAssetOwner(fl validator.FieldLevel) bool {
	return models.AssetOwner(fl.Field().String()).Valid()
}

func validateAssetKind(fl validator.FieldLevel) bool {
	return models.AssetKind(fl.Field().String()).Valid()
}
