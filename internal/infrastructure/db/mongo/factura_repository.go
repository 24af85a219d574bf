package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonvale/salon-system/internal/core/domain"
)

const collectionFacturas = "facturas"

type FacturaRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewFacturaRepository(db *mongo.Database) *FacturaRepository {
	return &FacturaRepository{db: db, col: db.Collection(collectionFacturas)}
}

func (r *FacturaRepository) List(ctx context.Context) ([]domain.Factura, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	facturas := make([]domain.Factura, 0)
	if err := cur.All(ctx, &facturas); err != nil {
		return nil, err
	}
	return facturas, nil
}

func (r *FacturaRepository) FindByID(ctx context.Context, id int) (*domain.Factura, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Factura
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Recurso: "La factura", ID: id}
		}
		return nil, err
	}
	return &f, nil
}

func (r *FacturaRepository) Create(ctx context.Context, f *domain.Factura) error {
	id, err := nextID(ctx, r.db, collectionFacturas)
	if err != nil {
		return err
	}
	f.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, f)
	return err
}

func (r *FacturaRepository) Update(ctx context.Context, f *domain.Factura) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Recurso: "La factura", ID: f.ID, Desaparecido: true}
	}
	return nil
}

func (r *FacturaRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Recurso: "La factura", ID: id, Desaparecido: true}
	}
	return nil
}
