package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	db DB
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(db DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

const campaignColumns = `id, campaign_name, subject_line, email_content, created_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.SubjectLine, &c.EmailContent, &c.CreatedAt)
	return c, err
}

// Create inserts a campaign and fills in its id and creation time.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO campaigns (campaign_name, subject_line, email_content)
		 VALUES ($1, $2, $3) RETURNING id, created_at`,
		c.Name, c.SubjectLine, c.EmailContent,
	).Scan(&c.ID, &c.CreatedAt)
	return storageErr("create campaign", err)
}

// List returns every campaign ordered by id.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, storageErr("list campaigns", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, storageErr("list campaigns", err)
	}
	return out, nil
}

// GetByID returns a campaign by id.
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return nil, storageErr("get campaign", err)
	}
	return &c, nil
}

// Update overwrites the editable fields of a campaign.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	err := r.db.QueryRow(ctx,
		`UPDATE campaigns SET campaign_name = $1, subject_line = $2, email_content = $3
		 WHERE id = $4 RETURNING created_at`,
		c.Name, c.SubjectLine, c.EmailContent, c.ID,
	).Scan(&c.CreatedAt)
	return storageErr("update campaign", err)
}

// Delete removes a campaign.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return storageErr("delete campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
