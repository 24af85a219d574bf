package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonvale/salon-system/internal/core/domain"
)

const collectionServicios = "servicios"

type ServicioRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewServicioRepository(db *mongo.Database) *ServicioRepository {
	return &ServicioRepository{db: db, col: db.Collection(collectionServicios)}
}

func (r *ServicioRepository) List(ctx context.Context) ([]domain.Servicio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	servicios := make([]domain.Servicio, 0)
	if err := cur.All(ctx, &servicios); err != nil {
		return nil, err
	}
	return servicios, nil
}

func (r *ServicioRepository) FindByID(ctx context.Context, id int) (*domain.Servicio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Servicio
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Recurso: "El servicio", ID: id}
		}
		return nil, err
	}
	return &s, nil
}

func (r *ServicioRepository) Create(ctx context.Context, s *domain.Servicio) error {
	id, err := nextID(ctx, r.db, collectionServicios)
	if err != nil {
		return err
	}
	s.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, s)
	return err
}

func (r *ServicioRepository) Update(ctx context.Context, s *domain.Servicio) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Recurso: "El servicio", ID: s.ID, Desaparecido: true}
	}
	return nil
}

func (r *ServicioRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Recurso: "El servicio", ID: id, Desaparecido: true}
	}
	return nil
}
