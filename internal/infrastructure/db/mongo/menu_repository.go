package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

const collectionMenu = "menu"

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenu)}
}

type mongoMenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Recipe   string             `bson:"recipe"`
	Image    string             `bson:"image"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.MenuItem{}
	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, domain.MenuItem{
			ID:       mi.ID.Hex(),
			Name:     mi.Name,
			Recipe:   mi.Recipe,
			Image:    mi.Image,
			Category: mi.Category,
			Price:    mi.Price,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}

	return items, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertAck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMenuItem{
		Name:     item.Name,
		Recipe:   item.Recipe,
		Image:    item.Image,
		Category: item.Category,
		Price:    item.Price,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return domain.InsertAck{}, fmt.Errorf("insert menu item: %w", err)
	}

	return domain.InsertAck{InsertedID: insertedID(res)}, nil
}

func (r *MenuRepository) DeleteByID(ctx context.Context, id string) (domain.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteAck{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.DeleteAck{}, fmt.Errorf("delete menu item: %w", err)
	}

	return domain.DeleteAck{DeletedCount: res.DeletedCount}, nil
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count menu: %w", err)
	}
	return n, nil
}
