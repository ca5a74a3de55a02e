package models

// Product represents a single catalog entry.
type Product struct {
	ID          string  `json:"id" bson:"_id" validate:"omitempty,uuid"`
	Name        string  `json:"name" bson:"name" validate:"omitempty,max=100"`
	Description string  `json:"description" bson:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" bson:"quantity" validate:"gte=0"`
	// Photo is a URL path under /images. It is a plain reference: the record
	// never guarantees the file still exists.
	Photo string `json:"photo" bson:"photo"`
}
