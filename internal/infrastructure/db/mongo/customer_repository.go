package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

const customersCollection = "customers"

// listLimit caps unbounded list queries; the dashboard never pages customers.
const listLimit = 200

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(customersCollection)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *c
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}
	return &created, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns customers matching the free-text search, newest first.
func (r *CustomerRepository) List(ctx context.Context, search string) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexEscape(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
			bson.M{"custom_address": pattern},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	customers := []*domain.Customer{}
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByCodePrefix matches mailbox codes by anchored prefix, for autocomplete.
func (r *CustomerRepository) FindByCodePrefix(ctx context.Context, prefix string) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"custom_address": primitive.Regex{Pattern: "^" + regexEscape(prefix), Options: "i"}}
	opts := options.Find().
		SetSort(bson.D{{Key: "custom_address", Value: 1}}).
		SetLimit(20)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	customers := []*domain.Customer{}
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// EnsureIndexes creates the unique mailbox-code index and the search indexes.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "custom_address", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
