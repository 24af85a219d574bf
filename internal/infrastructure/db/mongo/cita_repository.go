package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonvale/salon-system/internal/core/domain"
)

const collectionCitas = "citas"

type CitaRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewCitaRepository(db *mongo.Database) *CitaRepository {
	return &CitaRepository{db: db, col: db.Collection(collectionCitas)}
}

func (r *CitaRepository) List(ctx context.Context) ([]domain.Cita, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	citas := make([]domain.Cita, 0)
	if err := cur.All(ctx, &citas); err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *CitaRepository) FindByID(ctx context.Context, id int) (*domain.Cita, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Cita
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Recurso: "La cita", ID: id}
		}
		return nil, err
	}
	return &c, nil
}

func (r *CitaRepository) Create(ctx context.Context, c *domain.Cita) error {
	id, err := nextID(ctx, r.db, collectionCitas)
	if err != nil {
		return err
	}
	c.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, c)
	return err
}

func (r *CitaRepository) Update(ctx context.Context, c *domain.Cita) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Recurso: "La cita", ID: c.ID, Desaparecido: true}
	}
	return nil
}

func (r *CitaRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Recurso: "La cita", ID: id, Desaparecido: true}
	}
	return nil
}

// EnsureIndexes creates the indexes that back the daily report query and the
// per-client appointment lookups.
func (r *CitaRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "fecha_cita", Value: 1}}},
		{Keys: bson.D{{Key: "id_cliente", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
