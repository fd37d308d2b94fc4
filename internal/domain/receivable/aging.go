package receivable

import "time"

// ComputeAging buckets outstanding receivables by days past due as of
// the given date. Entries without a due date count as current; paid
// entries are skipped.
func ComputeAging(entries []Receivable, asOf time.Time) AgingSummary {
	var summary AgingSummary
	for _, e := range entries {
		if e.Status == StatusPaid || !e.Outstanding.IsPositive() {
			continue
		}
		if e.DueDate == nil {
			summary.Current = summary.Current.Add(e.Outstanding)
			continue
		}
		days := int(asOf.Sub(*e.DueDate).Hours() / 24)
		switch {
		case days <= 0:
			summary.Current = summary.Current.Add(e.Outstanding)
		case days <= 30:
			summary.Bucket30 = summary.Bucket30.Add(e.Outstanding)
		case days <= 60:
			summary.Bucket60 = summary.Bucket60.Add(e.Outstanding)
		case days <= 90:
			summary.Bucket90 = summary.Bucket90.Add(e.Outstanding)
		default:
			summary.Bucket120 = summary.Bucket120.Add(e.Outstanding)
		}
	}
	return summary
}
