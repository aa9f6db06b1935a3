package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"baanthai-construction-api/internal/models"
)

// SeedSiteContent creates the singleton footer and hero documents when they
// do not exist yet, so the public pages and admin forms always have a
// document to read. Existing content is never touched.
func SeedSiteContent(db *mongo.Database, log zerolog.Logger) error {
	collection := db.Collection("site_content")
	ctx := context.Background()
	now := time.Now().UTC()

	count, err := collection.CountDocuments(ctx, bson.M{"_id": models.FooterContentID})
	if err != nil {
		return err
	}
	if count == 0 {
		log.Info().Msg("footer content not found, seeding defaults")
		footer := models.FooterContent{
			ID:          models.FooterContentID,
			CompanyName: "บ้านไทยรับสร้างบ้าน",
			Tagline:     "สร้างบ้านคุณภาพ ราคายุติธรรม",
			Description: "รับสร้างบ้าน ต่อเติม และรีโนเวท โดยทีมช่างประสบการณ์กว่า 10 ปี",
			Keywords:    []string{"รับสร้างบ้าน", "ต่อเติมบ้าน", "รีโนเวทบ้าน"},
			Services:    []string{"รับสร้างบ้าน", "ต่อเติมบ้าน", "รีโนเวทบ้าน", "งานโครงสร้าง"},
			Experience:  "10+ ปี",
			Warranty:    "รับประกันโครงสร้าง 5 ปี",
			UpdatedAt:   now,
		}
		if _, err := collection.InsertOne(ctx, footer); err != nil {
			return err
		}
	} else {
		log.Debug().Msg("footer content exists, seeding skipped")
	}

	count, err = collection.CountDocuments(ctx, bson.M{"_id": models.HeroContentID})
	if err != nil {
		return err
	}
	if count == 0 {
		log.Info().Msg("hero content not found, seeding defaults")
		hero := models.HeroContent{
			ID:          models.HeroContentID,
			Title:       "สร้างบ้านในฝันของคุณ",
			Subtitle:    "บริการรับสร้างบ้านครบวงจร ด้วยทีมงานมืออาชีพ",
			Button1Text: "ขอใบเสนอราคา",
			Button1Link: "/quotation",
			Button2Text: "ดูผลงานของเรา",
			Button2Link: "/gallery",
			UpdatedAt:   now,
		}
		if _, err := collection.InsertOne(ctx, hero); err != nil {
			return err
		}
	} else {
		log.Debug().Msg("hero content exists, seeding skipped")
	}

	return nil
}
