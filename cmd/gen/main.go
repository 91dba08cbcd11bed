// Command gen generates type-safe gorm query code for the engine models.
// Repositories use plain gorm chains; the generated package serves ad-hoc
// tooling and data fixes.
package main

import (
	"time"

	"geolead/internal/infra/persistence/model"

	"gorm.io/gen"
)

// AlertQuerier holds the retention queries generated for merchant alerts.
type AlertQuerier interface {
	// SELECT * FROM @@table WHERE last_sent <= @cutoff ORDER BY last_sent LIMIT @limit
	FindSentBefore(cutoff time.Time, limit int) ([]*gen.T, error)
}

// LeadQuerier holds the dedup window queries generated for leads.
type LeadQuerier interface {
	// SELECT * FROM @@table WHERE dedupe_key = @key AND created_at > @from AND created_at < @to ORDER BY created_at, id
	FindInWindow(key string, from, to time.Time) ([]*gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(
		model.LeadModel{},
		model.MerchantModel{},
		model.CustomerModel{},
		model.MerchantAlertModel{},
		model.UndeliveredNotificationModel{},
	)
	g.ApplyInterface(func(AlertQuerier) {}, model.MerchantAlertModel{})
	g.ApplyInterface(func(LeadQuerier) {}, model.LeadModel{})

	g.Execute()
}
