package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id"`
	First_name    *string            `json:"first_name" bson:"first_name" validate:"max=100,required"`
	Last_name     *string            `json:"last_name" bson:"last_name" validate:"max=100,required"`
	Password      *string            `json:"password,omitempty" bson:"password" validate:"required,min=6"`
	Email         *string            `json:"email" bson:"email" validate:"email,required"`
	Phone         *string            `json:"phone" bson:"phone" validate:"required,len=10,numeric"`
	Token         *string            `json:"token,omitempty" bson:"token"`
	Refresh_token *string            `json:"refresh_token,omitempty" bson:"refresh_token"`
	Profile       string             `json:"profile" bson:"profile"`
	LikedProducts []string           `json:"liked_products" bson:"liked_products"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
	Updated_at    time.Time          `json:"updated_at" bson:"updated_at"`
	User_id       string             `json:"user_id" bson:"user_id"`
}
