package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"baanthai-construction-api/internal/models"
)

// Payload builders translate form inputs into write documents. Create
// payloads include an optional field only when it is present; update payloads
// $set present fields and $unset absent optional ones, so clearing a field
// removes the key instead of writing an empty value. The order field is
// always written.

func houseCreateDoc(id string, in models.HouseInput, now time.Time) bson.M {
	doc := bson.M{
		"_id":            id,
		"title":          in.Title,
		"price":          in.Price,
		"mainImage":      in.MainImage,
		"images":         in.Images,
		"specifications": in.Specifications,
		"featured":       in.Featured,
		"order":          in.Order,
		"createdAt":      now,
		"updatedAt":      now,
	}
	if v, ok := in.Description.Value(); ok {
		doc["description"] = v
	}
	if v, ok := in.FullDescription.Value(); ok {
		doc["fullDescription"] = v
	}
	if len(in.Features) > 0 {
		doc["features"] = in.Features
	}
	return doc
}

func houseUpdateDoc(in models.HouseInput, now time.Time) (set bson.M, unset bson.M) {
	set = bson.M{
		"title":          in.Title,
		"price":          in.Price,
		"mainImage":      in.MainImage,
		"images":         in.Images,
		"specifications": in.Specifications,
		"featured":       in.Featured,
		"order":          in.Order,
		"updatedAt":      now,
	}
	unset = bson.M{}
	setOrUnset(set, unset, "description", in.Description)
	setOrUnset(set, unset, "fullDescription", in.FullDescription)
	if len(in.Features) > 0 {
		set["features"] = in.Features
	} else {
		unset["features"] = ""
	}
	return set, unset
}

func galleryItemCreateDoc(id string, in models.GalleryItemInput, now time.Time) bson.M {
	doc := bson.M{
		"_id":         id,
		"description": in.Description,
		"imageUrl":    in.ImageURL,
		"order":       in.Order,
		"createdAt":   now,
		"updatedAt":   now,
	}
	if v, ok := in.Title.Value(); ok {
		doc["title"] = v
	}
	if v, ok := in.HouseID.Value(); ok {
		doc["houseId"] = v
	}
	if len(in.Images) > 0 {
		doc["images"] = in.Images
	}
	return doc
}

func galleryItemUpdateDoc(in models.GalleryItemInput, now time.Time) (set bson.M, unset bson.M) {
	set = bson.M{
		"description": in.Description,
		"imageUrl":    in.ImageURL,
		"order":       in.Order,
		"updatedAt":   now,
	}
	unset = bson.M{}
	setOrUnset(set, unset, "title", in.Title)
	setOrUnset(set, unset, "houseId", in.HouseID)
	if len(in.Images) > 0 {
		set["images"] = in.Images
	} else {
		unset["images"] = ""
	}
	return set, unset
}

func setOrUnset(set, unset bson.M, key string, opt models.Optional[string]) {
	if v, ok := opt.Value(); ok {
		set[key] = v
	} else {
		unset[key] = ""
	}
}

// updateCommand assembles the $set/$unset document, dropping an empty $unset.
func updateCommand(set, unset bson.M) bson.M {
	cmd := bson.M{"$set": set}
	if len(unset) > 0 {
		cmd["$unset"] = unset
	}
	return cmd
}
