// cmd/seeduser/main.go — Crea/actualiza vendedor de demo.
// Uso: go run cmd/seeduser/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/larturi/crm-graphql-go/internal/infra"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "crmclientes"
	}

	nombre := "Admin"
	apellido := "Demo"
	email := "admin@crmclientes.com"
	password := "1234"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewMongo(uri, dbName)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = db.Collection("usuarios").UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{
				"nombre":   nombre,
				"apellido": apellido,
				"password": string(hash),
			},
			"$setOnInsert": bson.M{"creado": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("upsert error: %v", err)
	}
	fmt.Printf("✅ Vendedor '%s' creado/actualizado con password '%s'\n", email, password)
}
