package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const collectionComplaints = "complaints"

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(collectionComplaints)}
}

// mongoComplaint mirrors domain.Complaint with bson tags; the "CPL-<millis>"
// token is the document key. Category and status tokens are stored verbatim.
type mongoComplaint struct {
	ID               string     `bson:"_id"`
	Name             string     `bson:"name"`
	Village          string     `bson:"village"`
	Category         string     `bson:"type"`
	Description      string     `bson:"description"`
	Image            string     `bson:"image,omitempty"`
	Status           string     `bson:"status"`
	DateSubmitted    time.Time  `bson:"dateSubmitted"`
	AssignedOfficial string     `bson:"assignedOfficial,omitempty"`
	Escalated        bool       `bson:"escalated,omitempty"`
	EscalationDate   *time.Time `bson:"escalationDate,omitempty"`
}

// All returns every complaint in submission order.
func (r *ComplaintRepository) All(ctx context.Context) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "dateSubmitted", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: find complaints: %v", domain.ErrPersistence, err)
	}
	defer cur.Close(ctx)

	var complaints []*domain.Complaint
	for cur.Next(ctx) {
		var mc mongoComplaint
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("%w: decode complaint: %v", domain.ErrPersistence, err)
		}
		complaints = append(complaints, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate complaints: %v", domain.ErrPersistence, err)
	}
	return complaints, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoComplaint
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("%w: find complaint: %v", domain.ErrPersistence, err)
	}
	return mc.toDomain(), nil
}

func (r *ComplaintRepository) Append(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, fromDomain(c)); err != nil {
		return fmt.Errorf("%w: insert complaint: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, fromDomain(c))
	if err != nil {
		return fmt.Errorf("%w: replace complaint: %v", domain.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the read paths rely on.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "dateSubmitted", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func fromDomain(c *domain.Complaint) mongoComplaint {
	return mongoComplaint{
		ID:               c.ID,
		Name:             c.Name,
		Village:          c.Village,
		Category:         string(c.Category),
		Description:      c.Description,
		Image:            c.Image,
		Status:           string(c.Status),
		DateSubmitted:    c.DateSubmitted,
		AssignedOfficial: c.AssignedOfficial,
		Escalated:        c.Escalated,
		EscalationDate:   c.EscalationDate,
	}
}

func (mc mongoComplaint) toDomain() *domain.Complaint {
	return &domain.Complaint{
		ID:               mc.ID,
		Name:             mc.Name,
		Village:          mc.Village,
		Category:         domain.ComplaintCategory(mc.Category),
		Description:      mc.Description,
		Image:            mc.Image,
		Status:           domain.ComplaintStatus(mc.Status),
		DateSubmitted:    mc.DateSubmitted.UTC(),
		AssignedOfficial: mc.AssignedOfficial,
		Escalated:        mc.Escalated,
		EscalationDate:   mc.EscalationDate,
	}
}
