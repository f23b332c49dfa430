// Package seed inserts demo quotes on startup in development so the quotes
// list is never empty on a fresh database. The seed is idempotent: demo
// rows are keyed by title and inserted at most once.
package seed

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/kbworks/estimator/internal/catalog"
	"github.com/kbworks/estimator/internal/pricing"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

type demoQuote struct {
	title      string
	notes      string
	kind       catalog.Kind
	experience catalog.Experience
	values     pricing.Snapshot
}

var demoQuotes = []demoQuote{
	{
		title:      "Maple St kitchen refresh",
		notes:      "demo data",
		kind:       catalog.KindKitchen,
		experience: catalog.ExperienceBasic,
		values: pricing.Snapshot{
			"kitchenSize":    "medium",
			"baseCabinets":   14.0,
			"wallCabinets":   10.0,
			"faucetUpgrade":  "Yes",
			"backsplashTile": 30.0,
		},
	},
	{
		title:      "Oak Ave guest bath",
		notes:      "demo data",
		kind:       catalog.KindAdditional,
		experience: "",
		values: pricing.Snapshot{
			"vanityInstall":    "Yes",
			"showerTile":       85.0,
			"tileFloor":        40.0,
			"exhaustFan":       "Yes",
			"haulAway":         "Yes",
			"haulAwayQuantity": 2.0,
		},
	},
}

// Run inserts any missing demo quotes, pricing each one through the
// calculator so stored totals always match what the engine would produce.
func Run(db *sql.DB, catalogs map[catalog.Kind]*catalog.Catalog) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	for _, q := range demoQuotes {
		if err := ensureQuote(tx, catalogs, q, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureQuote(tx *sql.Tx, catalogs map[catalog.Kind]*catalog.Catalog, q demoQuote, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM quotes WHERE title = ? LIMIT 1)`, q.title).Scan(&exists); err != nil {
		return fmt.Errorf("check demo quote existence: %w", err)
	}
	if exists {
		return nil
	}

	cat, ok := catalogs[q.kind]
	if !ok {
		return fmt.Errorf("no catalog loaded for kind %q", q.kind)
	}

	inputs := cat.All()
	if q.experience != "" {
		inputs = cat.FilterByExperience(q.experience)
	}
	total := pricing.CalculateTotal(inputs, q.values)

	valuesJSON, err := json.Marshal(q.values)
	if err != nil {
		return fmt.Errorf("encode demo quote values: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO quotes (kind, experience, title, notes, values_json, total)
		VALUES (?, ?, ?, ?, ?, ?)
	`, string(q.kind), string(q.experience), q.title, q.notes, string(valuesJSON), total); err != nil {
		return fmt.Errorf("insert demo quote: %w", err)
	}
	stats.Inserts++
	return nil
}
