package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

// mongoUser mirrors domain.User with bson tags. The account id (the
// "user_<millis>" token, or "1"/"2" for seeds) is the document key.
type mongoUser struct {
	ID             string    `bson:"_id"`
	Username       string    `bson:"username"`
	PasswordHash   string    `bson:"passwordHash,omitempty"`
	Role           string    `bson:"role"`
	Email          string    `bson:"email"`
	FullName       string    `bson:"fullName"`
	PhoneNumber    string    `bson:"phoneNumber"`
	District       string    `bson:"district,omitempty"`
	Village        string    `bson:"village,omitempty"`
	DateRegistered time.Time `bson:"dateRegistered"`
}

func (r *UserRepository) All(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "dateRegistered", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: find users: %v", domain.ErrPersistence, err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("%w: decode user: %v", domain.ErrPersistence, err)
		}
		users = append(users, mu.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate users: %v", domain.ErrPersistence, err)
	}
	return users, nil
}

func (r *UserRepository) Append(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		ID:             user.ID,
		Username:       user.Username,
		PasswordHash:   user.PasswordHash,
		Role:           user.Role,
		Email:          user.Email,
		FullName:       user.FullName,
		PhoneNumber:    user.PhoneNumber,
		District:       user.District,
		Village:        user.Village,
		DateRegistered: user.DateRegistered,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("%w: insert user: %v", domain.ErrPersistence, err)
	}
	return nil
}

// EnsureIndexes creates the uniqueness indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:             mu.ID,
		Username:       mu.Username,
		PasswordHash:   mu.PasswordHash,
		Role:           mu.Role,
		Email:          mu.Email,
		FullName:       mu.FullName,
		PhoneNumber:    mu.PhoneNumber,
		District:       mu.District,
		Village:        mu.Village,
		DateRegistered: mu.DateRegistered.UTC(),
	}
}
