package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id"`
	P_id        string             `json:"pid" bson:"p_id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Price       int                `json:"price" bson:"price" validate:"required,gt=0"`
	Owner_id    string             `json:"owner_id" bson:"owner_id"`
	Pimage      string             `json:"pimage" bson:"pimage"`
	Pimage2     string             `json:"pimage2" bson:"pimage2"`
	Created_at  time.Time          `json:"created_at" bson:"created_at"`
}
