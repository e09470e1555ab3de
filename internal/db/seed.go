package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: three websites with categories carrying visitor
// ranges, a handful of advertisements and approved placements ready for
// payment initiation.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	type categorySeed struct {
		name       string
		visitorMin int64
		visitorMax int64
	}
	websites := []struct {
		ownerID    int64
		name       string
		url        string
		categories []categorySeed
	}{
		{
			ownerID: 101, name: "Kigali Daily", url: "https://kigalidaily.example",
			categories: []categorySeed{
				{"technology", 100, 1000},
				{"sports", 50, 500},
			},
		},
		{
			ownerID: 102, name: "East Africa Review", url: "https://earq.example",
			categories: []categorySeed{
				{"business", 200, 2000},
				{"culture", 80, 800},
				{"opinion", 40, 400},
			},
		},
		{
			ownerID: 103, name: "Traveler Hub", url: "https://travelerhub.example",
			categories: []categorySeed{
				{"destinations", 150, 1500},
			},
		},
	}

	for i, w := range websites {
		websiteID := int64(i + 1)
		_, err := db.Exec(ctx, `INSERT INTO websites (id, owner_id, name, url, created_at)
            VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
			websiteID, w.ownerID, w.name, w.url)
		if err != nil {
			return err
		}
		for j, c := range w.categories {
			categoryID := websiteID*10 + int64(j+1)
			_, err = db.Exec(ctx, `INSERT INTO categories (id, website_id, name, visitor_min, visitor_max, created_at)
                VALUES ($1,$2,$3,$4,$5,now()) ON CONFLICT DO NOTHING`,
				categoryID, websiteID, c.name, c.visitorMin, c.visitorMax)
			if err != nil {
				return err
			}
		}
	}

	// advertisements and approved placements spread across the websites
	for i := 1; i <= 5; i++ {
		adID := int64(i)
		_, err := db.Exec(ctx, `INSERT INTO advertisements (id, advertiser_id, name, created_at)
            VALUES ($1,$2,$3,now()) ON CONFLICT DO NOTHING`,
			adID, int64(200+i), fmt.Sprintf("Demo ad %d", i))
		if err != nil {
			return err
		}

		websiteID := int64(i%3 + 1)
		var placementID int64
		err = db.QueryRow(ctx, `INSERT INTO placements (ad_id, website_id, approved, approved_at, created_at)
            VALUES ($1,$2,true,now(),now())
            ON CONFLICT (ad_id, website_id) DO UPDATE SET approved = placements.approved
            RETURNING id`, adID, websiteID).Scan(&placementID)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO placement_categories (placement_id, category_id)
            SELECT $1, id FROM categories WHERE website_id = $2
            ON CONFLICT DO NOTHING`, placementID, websiteID)
		if err != nil {
			return err
		}
	}
	return nil
}
