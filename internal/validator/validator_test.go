package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type sample struct {
	Month   string `binding:"omitempty,month"`
	Person  string `binding:"omitempty,person"`
	Kind    string `binding:"omitempty,transaction_kind"`
	Status  string `binding:"omitempty,transaction_status"`
	Source  string `binding:"omitempty,income_source"`
	Account string `binding:"omitempty,funding_account"`
	Tier    string `binding:"omitempty,liquidity_tier"`
	Owner   string `binding:"omitempty,asset_owner"`
	Asset   string `binding:"omitempty,asset_kind"`
}

func TestRegister(t *testing.T) {
	Register()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("expected go-playground validator engine")
	}
	v.SetTagName("binding")

	valid := sample{
		Month:   "2025-03",
		Person:  "Vanessa",
		Kind:    "expense",
		Status:  "pending",
		Source:  "Salary",
		Account: "Credit Card",
		Tier:    "SemiLiquid",
		Owner:   "Joint",
		Asset:   "retirement",
	}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid sample, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(s *sample)
	}{
		{"month", func(s *sample) { s.Month = "2025-3" }},
		{"person", func(s *sample) { s.Person = "jeff" }},
		{"kind", func(s *sample) { s.Kind = "transfer" }},
		{"status", func(s *sample) { s.Status = "void" }},
		{"source", func(s *sample) { s.Source = "Gift" }},
		{"account", func(s *sample) { s.Account = "Brokerage" }},
		{"tier", func(s *sample) { s.Tier = "liquid" }},
		{"owner", func(s *sample) { s.Owner = "Both" }},
		{"asset kind", func(s *sample) { s.Asset = "crypto" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := v.Struct(s); err == nil {
				t.Errorf("expected %s validation error", tt.name)
			}
		})
	}
}
