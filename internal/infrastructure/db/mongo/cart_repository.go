package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

const collectionCarts = "carts"

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

type mongoCartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	MenuItemID string             `bson:"menu_item_id"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
	Email      string             `bson:"email"`
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) (domain.InsertAck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCartItem{
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Image:      item.Image,
		Price:      item.Price,
		Email:      item.Email,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return domain.InsertAck{}, fmt.Errorf("insert cart item: %w", err)
	}

	return domain.InsertAck{InsertedID: insertedID(res)}, nil
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer cur.Close(ctx)

	items := []domain.CartItem{}
	for cur.Next(ctx) {
		var mc mongoCartItem
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, domain.CartItem{
			ID:         mc.ID.Hex(),
			MenuItemID: mc.MenuItemID,
			Name:       mc.Name,
			Image:      mc.Image,
			Price:      mc.Price,
			Email:      mc.Email,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	return items, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) (domain.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteAck{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domain.DeleteAck{}, fmt.Errorf("delete cart item: %w", err)
	}

	return domain.DeleteAck{DeletedCount: res.DeletedCount}, nil
}
