package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns, audiences and one running automation
// scheduled for the next full hour. Rows are only added when the
// campaigns table is empty, so seeding twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var campaignIDs []int64
	for i := 1; i <= 3; i++ {
		var id int64
		err = tx.QueryRow(ctx, `INSERT INTO campaigns (campaign_name, subject_line, email_content)
VALUES ($1, $2, $3) RETURNING id`,
			fmt.Sprintf("Campaign %d", i),
			fmt.Sprintf("News update #%d", i),
			fmt.Sprintf("<h1>Hello!</h1><p>This is newsletter number %d.</p>", i),
		).Scan(&id)
		if err != nil {
			return err
		}
		campaignIDs = append(campaignIDs, id)
	}

	var audienceIDs []int64
	for i := 1; i <= 10; i++ {
		var id int64
		err = tx.QueryRow(ctx, `INSERT INTO audiences (name, first_name, last_name, email)
VALUES ($1, $2, $3, $4) RETURNING id`,
			"Newsletter",
			fmt.Sprintf("User%d", i),
			"Demo",
			fmt.Sprintf("user%d@example.com", i),
		).Scan(&id)
		if err != nil {
			return err
		}
		audienceIDs = append(audienceIDs, id)
	}

	next := time.Now().Truncate(time.Hour).Add(time.Hour)
	var automationID int64
	err = tx.QueryRow(ctx, `INSERT INTO automations (name, schedule, campaign_id, status)
VALUES ($1, $2, $3, 'Running') RETURNING id`,
		"Demo automation", next, campaignIDs[0],
	).Scan(&automationID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO automation_audiences (automation_id, audience_id)
SELECT $1, unnest($2::bigint[])`, automationID, audienceIDs[:5])
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
