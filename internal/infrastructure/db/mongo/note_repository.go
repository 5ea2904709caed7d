package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nlog/notes-system/internal/core/domain"
)

const collectionNotes = "notes"

// NoteRepository persists free-form note documents. Notes are stored exactly
// as the client sent them plus a "user" field holding the owner email; the
// _id is Mongo's ObjectID, exposed to callers as its hex string.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(collectionNotes)}
}

// Insert stores a new note with owner stamped onto it and returns the
// store-assigned id.
func (r *NoteRepository) Insert(ctx context.Context, owner string, fields map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	doc["user"] = owner

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert note: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert note: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByOwner returns all notes belonging to owner in natural order.
func (r *NoteRepository) FindByOwner(ctx context.Context, owner string) ([]domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user": owner})
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cur.Close(ctx)

	var notes []domain.Note
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, noteFromDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// Update applies fields to the note matching both id and owner. The owner
// predicate is what keeps one user's update away from another user's note;
// never filter by _id alone here.
func (r *NoteRepository) Update(ctx context.Context, id, owner string, fields map[string]any) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid ObjectID, so it cannot match any document.
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "user": owner}

	// Mongo rejects an empty $set, so an update with no effective fields
	// degenerates to an ownership check.
	if len(fields) == 0 {
		n, err := r.coll.CountDocuments(ctx, filter)
		if err != nil {
			return false, fmt.Errorf("update note: %w", err)
		}
		return n > 0, nil
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return false, fmt.Errorf("update note: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the note matching both id and owner, with the same
// predicate rule as Update.
func (r *NoteRepository) Delete(ctx context.Context, id, owner string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user": owner})
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates the owner index used by FindByOwner and the scoped
// update/delete predicates.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}},
	})
	return err
}

// noteFromDoc splits a raw document into id, owner and the remaining fields.
func noteFromDoc(doc bson.M) domain.Note {
	n := domain.Note{Fields: make(map[string]any, len(doc))}
	for k, v := range doc {
		switch k {
		case "_id":
			if oid, ok := v.(primitive.ObjectID); ok {
				n.ID = oid.Hex()
			} else {
				n.ID = fmt.Sprintf("%v", v)
			}
		case "user":
			n.Owner, _ = v.(string)
		default:
			n.Fields[k] = v
		}
	}
	return n
}
