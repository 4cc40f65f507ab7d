// Package mongostore persists users and their saved books as MongoDB documents.
// Saved books are embedded in the user document so every list change is a
// single-document atomic update.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/credentials"
	"bookshelf/internal/errs"
	"bookshelf/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const UsersCollection = "users"

type userDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Email      string             `bson:"email"`
	Password   string             `bson:"password"` // bcrypt hash
	SavedBooks []bookDocument     `bson:"savedBooks"`
}

type bookDocument struct {
	BookID      string   `bson:"bookId"`
	Title       string   `bson:"title"`
	Description string   `bson:"description,omitempty"`
	Authors     []string `bson:"authors"`
	Image       string   `bson:"image,omitempty"`
	Link        string   `bson:"link,omitempty"`
}

type UserStore struct {
	users *mongo.Collection
}

func NewUserStore(users *mongo.Collection) *UserStore {
	return &UserStore{
		users: users,
	}
}

// EnsureIndexes creates the unique indexes backing username and email uniqueness.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (s *UserStore) CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	if err := newUser.Validate(); err != nil {
		return models.User{}, errs.Wrap(errs.KindValidation, err.Error(), err)
	}

	hash, err := credentials.HashPassword(newUser.Password)
	if err != nil {
		return models.User{}, err
	}

	doc := userDocument{
		ID:         primitive.NewObjectID(),
		Username:   newUser.Username,
		Email:      newUser.Email,
		Password:   hash,
		SavedBooks: []bookDocument{},
	}

	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, errs.Wrap(errs.KindValidation, "username or email already in use", err)
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return doc.toModel(), nil
}

func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (s *UserStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *UserStore) VerifyPassword(user models.User, candidate string) bool {
	return credentials.ComparePassword(user.PasswordHash, candidate)
}

// AddSavedBook pushes book only when no entry with the same bookId exists. When the
// conditional update matches nothing the user is re-read to tell "already saved"
// apart from "no such user".
func (s *UserStore) AddSavedBook(ctx context.Context, userID string, book models.SavedBook) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, errs.Wrap(errs.KindNotFound, "User not found", err)
	}

	filter := bson.D{
		{Key: "_id", Value: oid},
		{Key: "savedBooks.bookId", Value: bson.D{{Key: "$ne", Value: book.BookID}}},
	}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "savedBooks", Value: bookFromModel(book)}}}}

	user, err := s.findOneAndUpdate(ctx, filter, update)
	if err != nil {
		return models.User{}, fmt.Errorf("push saved book: %w", err)
	}
	if user != nil {
		return *user, nil
	}

	existing, err := s.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if existing == nil {
		return models.User{}, errs.New(errs.KindNotFound, "User not found")
	}
	return *existing, nil
}

func (s *UserStore) RemoveSavedBook(ctx context.Context, userID, bookID string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, errs.Wrap(errs.KindNotFound, "User not found", err)
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "savedBooks", Value: bson.D{{Key: "bookId", Value: bookID}}}}}}

	user, err := s.findOneAndUpdate(ctx, filter, update)
	if err != nil {
		return models.User{}, fmt.Errorf("pull saved book: %w", err)
	}
	if user == nil {
		return models.User{}, errs.New(errs.KindNotFound, "User not found")
	}
	return *user, nil
}

func (s *UserStore) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var doc userDocument
	err := s.users.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user := doc.toModel()
	return &user, nil
}

func (s *UserStore) findOneAndUpdate(ctx context.Context, filter, update bson.D) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := s.users.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	user := doc.toModel()
	return &user, nil
}

func (d userDocument) toModel() models.User {
	books := make([]models.SavedBook, 0, len(d.SavedBooks))
	for _, b := range d.SavedBooks {
		authors := b.Authors
		if authors == nil {
			authors = []string{}
		}
		books = append(books, models.SavedBook{
			BookID:      b.BookID,
			Title:       b.Title,
			Description: b.Description,
			Authors:     authors,
			Image:       b.Image,
			Link:        b.Link,
		})
	}

	return models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.Password,
		SavedBooks:   books,
	}
}

func bookFromModel(b models.SavedBook) bookDocument {
	authors := b.Authors
	if authors == nil {
		authors = []string{}
	}
	return bookDocument{
		BookID:      b.BookID,
		Title:       b.Title,
		Description: b.Description,
		Authors:     authors,
		Image:       b.Image,
		Link:        b.Link,
	}
}
