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

const collectionUsuarios = "usuarios"

type UsuarioRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewUsuarioRepository(db *mongo.Database) *UsuarioRepository {
	return &UsuarioRepository{db: db, col: db.Collection(collectionUsuarios)}
}

// List returns every usuario ordered by id.
func (r *UsuarioRepository) List(ctx context.Context) ([]domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	usuarios := make([]domain.Usuario, 0)
	if err := cur.All(ctx, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// FindByID retrieves a usuario by its numeric id.
func (r *UsuarioRepository) FindByID(ctx context.Context, id int) (*domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.Usuario
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Recurso: "El usuario", ID: id}
		}
		return nil, err
	}
	return &u, nil
}

// FindByCorreo retrieves a usuario by email, matched exactly as stored.
func (r *UsuarioRepository) FindByCorreo(ctx context.Context, correo string) (*domain.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.Usuario
	err := r.col.FindOne(ctx, bson.M{"correo": correo}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Recurso: "El usuario"}
		}
		return nil, err
	}
	return &u, nil
}

// Create assigns the next sequence id and inserts the document.
func (r *UsuarioRepository) Create(ctx context.Context, u *domain.Usuario) error {
	id, err := nextID(ctx, r.db, collectionUsuarios)
	if err != nil {
		return err
	}
	u.ID = id

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.col.InsertOne(ctx, u)
	return err
}

// Update replaces the stored document. A replacement that matches nothing
// means the record vanished between load and write.
func (r *UsuarioRepository) Update(ctx context.Context, u *domain.Usuario) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Recurso: "El usuario", ID: u.ID, Desaparecido: true}
	}
	return nil
}

// Delete removes the document by id.
func (r *UsuarioRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Recurso: "El usuario", ID: id, Desaparecido: true}
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by login and listings.
func (r *UsuarioRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "correo", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "rol", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
