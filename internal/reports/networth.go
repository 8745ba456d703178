package reports

import (
	"sort"

	"budgetbook/internal/models"
	"budgetbook/internal/period"
)

// NetWorth compares the snapshots of month with those of the preceding
// calendar month. current and prior may contain rows from other months; only
// rows for month and month.Prev() are considered.
func NetWorth(month period.Month, current, prior []models.AssetSnapshot) *NetWorthReport {
	priorMonth := month.Prev()
	now := indexSnapshots(current, month.String())
	before := indexSnapshots(prior, priorMonth.String())

	report := &NetWorthReport{
		Month:          month.String(),
		PriorMonth:     priorMonth.String(),
		HasBaseline:    len(before) > 0,
		TotalStatus:    DeltaNoBaseline,
		Accounts:       []AccountDelta{},
		NewAccounts:    []AccountDelta{},
		ClosedAccounts: []AccountDelta{},
	}

	tierNow := make(map[models.LiquidityTier]int64)
	tierBefore := make(map[models.LiquidityTier]int64)
	tierSeen := make(map[models.LiquidityTier]bool)
	ownerNow := make(map[models.AssetOwner]int64)
	ownerBefore := make(map[models.AssetOwner]int64)
	ownerSeen := make(map[models.AssetOwner]bool)

	for _, snap := range now {
		report.TotalNetWorth += snap.Balance
		tierNow[snap.Tier] += snap.Balance
		ownerNow[snap.Owner] += snap.Balance

		line := AccountDelta{
			AccountID: snap.AccountID,
			Account:   snap.AccountName,
			Tier:      snap.Tier,
			Owner:     snap.Owner,
			Balance:   snap.Balance,
		}
		prev, ok := before[snap.AccountID]
		switch {
		case !report.HasBaseline:
			line.Status = DeltaNoBaseline
			report.Accounts = append(report.Accounts, line)
		case !ok:
			line.Status = DeltaNewAccount
			report.NewAccounts = append(report.NewAccounts, line)
		default:
			line.PriorBalance = ptr(prev.Balance)
			line.Delta = ptr(snap.Balance - prev.Balance)
			line.Status = DeltaOK
			report.Accounts = append(report.Accounts, line)
		}
	}

	var priorTotal int64
	for _, snap := range before {
		priorTotal += snap.Balance
		tierBefore[snap.Tier] += snap.Balance
		tierSeen[snap.Tier] = true
		ownerBefore[snap.Owner] += snap.Balance
		ownerSeen[snap.Owner] = true

		if _, ok := now[snap.AccountID]; ok {
			continue
		}
		report.ClosedAccounts = append(report.ClosedAccounts, AccountDelta{
			AccountID:    snap.AccountID,
			Account:      snap.AccountName,
			Tier:         snap.Tier,
			Owner:        snap.Owner,
			PriorBalance: ptr(snap.Balance),
			Status:       DeltaClosed,
		})
	}

	if report.HasBaseline {
		report.PriorNetWorth = ptr(priorTotal)
		report.TotalDelta = ptr(report.TotalNetWorth - priorTotal)
		report.TotalStatus = DeltaOK
	}

	for _, tier := range models.LiquidityTiers {
		t := TierTotal{Tier: tier, Balance: tierNow[tier], Status: DeltaNoBaseline}
		if tierSeen[tier] {
			t.PriorBalance = ptr(tierBefore[tier])
			t.Delta = ptr(tierNow[tier] - tierBefore[tier])
			t.Status = DeltaOK
		}
		report.ByTier = append(report.ByTier, t)
	}
	for _, owner := range models.AssetOwners {
		o := OwnerTotal{Owner: owner, Balance: ownerNow[owner], Status: DeltaNoBaseline}
		if ownerSeen[owner] {
			o.PriorBalance = ptr(ownerBefore[owner])
			o.Delta = ptr(ownerNow[owner] - ownerBefore[owner])
			o.Status = DeltaOK
		}
		report.ByOwner = append(report.ByOwner, o)
	}

	sortAccounts(report.Accounts)
	sortAccounts(report.NewAccounts)
	sortAccounts(report.ClosedAccounts)
	return report
}

func indexSnapshots(snaps []models.AssetSnapshot, month string) map[string]models.AssetSnapshot {
	out := make(map[string]models.AssetSnapshot, len(snaps))
	for i := range snaps {
		if snaps[i].Month == month {
			out[snaps[i].AccountID] = snaps[i]
		}
	}
	return out
}

func sortAccounts(lines []AccountDelta) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Account != lines[j].Account {
			return lines[i].Account < lines[j].Account
		}
		return lines[i].AccountID < lines[j].AccountID
	})
}

func ptr(v int64) *int64 {
	return &v
}
