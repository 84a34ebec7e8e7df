package entity

import "time"

// Closed enumerations for article attributes. The sets are fixed; changing
// them is a schema migration, not a runtime concern.
type (
	Size        string
	Gender      string
	Status      string
	ArticleType string
)

const (
	SizeXS Size = "xs"
	SizeS  Size = "s"
	SizeM  Size = "m"
	SizeL  Size = "l"
	SizeXL Size = "xl"

	GenderMens   Gender = "mens"
	GenderWomens Gender = "womens"
	GenderUnisex Gender = "unisex"

	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"

	TypeTop       ArticleType = "top"
	TypeBottom    ArticleType = "bottom"
	TypeDress     ArticleType = "dress"
	TypeOuterwear ArticleType = "outerwear"
	TypeFootwear  ArticleType = "footwear"
	TypeAccessory ArticleType = "accessory"
)

// Article is a listing put up for sale by a user. ImageID references the
// images row created in the same transaction; OwnerID is immutable after
// creation.
type Article struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	OwnerID     int64       `json:"owner_id"`
	ImageID     int64       `json:"image_id"`
	Size        Size        `json:"size"`
	Gender      Gender      `json:"gender"`
	Price       int64       `json:"price"`
	Status      Status      `json:"status"`
	ArticleType ArticleType `json:"article_type"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
