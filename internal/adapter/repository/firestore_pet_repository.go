package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xenopets/internal/domain/entity"
	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
)

type firestorePetRepository struct {
	client *firestore.Client
}

func NewFirestorePetRepository(client *firestore.Client) repository.PetRepository {
	return &firestorePetRepository{
		client: client,
	}
}

func (r *firestorePetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if err := pet.Validate(); err != nil {
		return err
	}

	if pet.ID == "" {
		doc := r.client.Collection("pets").NewDoc()
		pet.ID = doc.ID
	}

	now := time.Now()
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = now
	}
	pet.UpdatedAt = now
	if pet.HatchTime == nil {
		pet.HatchTime = &now
	}

	_, err := r.client.Collection("pets").Doc(pet.ID).Set(ctx, pet)
	if err != nil {
		return errors.Internal("Failed to create pet", err)
	}

	return nil
}

func (r *firestorePetRepository) GetByID(ctx context.Context, id string) (*entity.Pet, error) {
	doc, err := r.client.Collection("pets").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Pet", err)
		}
		return nil, errors.Internal("Failed to get pet", err)
	}

	var pet entity.Pet
	if err := doc.DataTo(&pet); err != nil {
		return nil, errors.Internal("Failed to parse pet data", err)
	}

	return &pet, nil
}

func (r *firestorePetRepository) Update(ctx context.Context, pet *entity.Pet) error {
	pet.UpdatedAt = time.Now()

	_, err := r.client.Collection("pets").Doc(pet.ID).Set(ctx, pet)
	if err != nil {
		return errors.Internal("Failed to update pet", err)
	}

	return nil
}

func (r *firestorePetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error) {
	query := r.client.Collection("pets").Where("ownerId", "==", ownerID)
	return r.collect(query.Documents(ctx))
}

// List returns every pet, dead ones included; statistics need the full
// denominator.
func (r *firestorePetRepository) List(ctx context.Context) ([]*entity.Pet, error) {
	return r.collect(r.client.Collection("pets").Documents(ctx))
}

func (r *firestorePetRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Pet, error) {
	var pets []*entity.Pet
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list pets", err)
		}

		var pet entity.Pet
		if err := doc.DataTo(&pet); err != nil {
			return nil, errors.Internal("Failed to parse pet data", err)
		}
		pets = append(pets, &pet)
	}

	return pets, nil
}
