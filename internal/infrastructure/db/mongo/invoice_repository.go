package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yng-express/parcel-admin/internal/core/domain"
)

const (
	invoicesCollection = "invoices"
	countersCollection = "counters"
)

type InvoiceRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{
		coll:     db.Collection(invoicesCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *inv
	created.ID = primitive.NewObjectID().Hex()

	if _, err := r.coll.InsertOne(ctx, created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	invoices := []*domain.Invoice{}
	if err := cur.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// NextSequence atomically increments and returns the yearly invoice counter.
func (r *InvoiceRepository) NextSequence(ctx context.Context, year int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": fmt.Sprintf("invoices:%d", year)},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// EnsureIndexes creates necessary indexes on the invoices collection.
func (r *InvoiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "invoice_number", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "parcel_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
